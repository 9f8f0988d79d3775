package generation

import (
	"fmt"

	"resume-ai-backend/internal/llm"
)

const (
	resumeSystemPrompt      = "You are an ATS resume optimizer."
	coverLetterSystemPrompt = "You write concise, sincere one-page cover letters."

	resumeTemperature      float32 = 0.4
	coverLetterTemperature float32 = 0.5

	kindResume      = "resume"
	kindCoverLetter = "cover_letter"
)

func resumeMessages(jobText, resumeText string) []llm.Message {
	return []llm.Message{
		{Role: llm.RoleSystem, Content: resumeSystemPrompt},
		{Role: llm.RoleUser, Content: fmt.Sprintf(
			"JOB DESCRIPTION:\n%s\n\nCANDIDATE RESUME:\n%s\n\nReturn an ATS-optimized resume with sections and bullet points.",
			jobText, resumeText,
		)},
	}
}

func coverLetterMessages(tone, jobText, resumeText string) []llm.Message {
	return []llm.Message{
		{Role: llm.RoleSystem, Content: coverLetterSystemPrompt},
		{Role: llm.RoleUser, Content: fmt.Sprintf(
			"Tone: %s\n\nJOB DESCRIPTION:\n%s\n\nCANDIDATE RESUME:\n%s\n\nReturn a one-page cover letter.",
			tone, jobText, resumeText,
		)},
	}
}
