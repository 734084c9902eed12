package analysis

import "fmt"

// analysisTemplate is the section schema the service must follow. The six
// headers are load-bearing: the report parser locates sections by these exact
// strings, so the template and reportparser.SectionHeaders must stay in sync.
const analysisTemplate = `
## 1. Key Findings
[Concise bullet points of important findings]

## 2. Potential Diagnoses
[List of possible diagnoses with confidence levels]

## 3. Medication Recommendations
[Suggested medicines with effectiveness percentages, dosages, and side effects]

## 4. Lifestyle Guidance
[Diet plans (vegetarian/non-vegetarian), exercise routines, sleep advice]

## 5. Disease Classification
[Classification into chronic, infectious, common illnesses etc.]

## 6. Next Steps
[Recommended follow-up actions and timeline]
`

const systemPrompt = "You are a clinical documentation assistant. You analyze medical report text and produce a structured markdown summary that follows the requested section schema exactly."

// BuildPrompt embeds the document content into the fixed instruction
// template.
func BuildPrompt(content string) string {
	instructions := fmt.Sprintf(`Analyze this medical report and provide structured output with these exact section headers:

%s

Additional requirements:
- Use concise, professional language
- Include relevant emojis for readability
- For medications, provide exact dosages when possible
- For diagnoses, include confidence percentages
- Format with clear markdown headers
`, analysisTemplate)

	return instructions + "\n\n" + content
}
