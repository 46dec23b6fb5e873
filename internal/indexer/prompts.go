package indexer

import "fmt"

// overviewCharBudget caps the text sent for overview generation. Overviews
// summarize whole documents, so the budget is larger than the metadata
// extraction excerpt.
const overviewCharBudget = 12000

const overviewPromptTemplate = `Summarize the following construction document in exactly one sentence. Mention what kind of document it is (drawing, specification, report) and its subject. Return only the sentence.

%s`

// buildOverviewPrompt constructs the one-sentence overview prompt from the
// document's full text, truncated to the character budget.
func buildOverviewPrompt(text string) string {
	if len(text) > overviewCharBudget {
		text = text[:overviewCharBudget]
	}
	return fmt.Sprintf(overviewPromptTemplate, text)
}
