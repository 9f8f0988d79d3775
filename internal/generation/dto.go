package generation

type generateRequest struct {
	ResumeText *string `json:"resume_text" binding:"required"`
	JobText    *string `json:"job_text" binding:"required"`
	Tone       *string `json:"tone"`
	ModelName  *string `json:"model_name"`
}

func (r generateRequest) toRequest() Request {
	req := Request{
		ResumeText: deref(r.ResumeText),
		JobText:    deref(r.JobText),
		Tone:       DefaultTone,
		ModelName:  deref(r.ModelName),
	}
	if r.Tone != nil {
		req.Tone = *r.Tone
	}
	return req
}

// GenerateResponse is the outward-facing representation of a generation result.
type GenerateResponse struct {
	TailoredResume string `json:"tailored_resume"`
	CoverLetter    string `json:"cover_letter"`
}

func toGenerateResponse(res Result) GenerateResponse {
	return GenerateResponse{
		TailoredResume: res.TailoredResume,
		CoverLetter:    res.CoverLetter,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
