package agent

import (
	"strings"

	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

const accountantInstruction = `
You are a chartered accountant reviewing the balance sheet of a small business.

Comment the liquidity (current ratio), the leverage (debt-to-equity and debt
ratio) and the solvency (owner's equity). Ratios reported as N/A could not be
computed because their denominator is zero: explain what it means instead of
computing them.

Be concise, use markdown, and never invent figures that are not in the reports.

The reports are:
`

// NewAccountant creates the expert that comments balance sheet reports.
// The reports are given as context in the system instruction.
func NewAccountant(reports ...string) *Expert {
	return &Expert{
		Name:        "Accountant",
		Description: "A chartered accountant commenting a balance sheet and its financial ratios.",
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{
				Text: accountantInstruction + strings.Join(reports, "\n"),
			}}},
		},
	}
}
