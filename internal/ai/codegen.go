package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// systemPrompt pins the code dialect and the sandbox surface. The sandbox
// binds exactly df, plt and pd; everything the model may call is listed
// here so the generated code stays inside the allow-list.
const systemPrompt = `You are a data visualization expert. Generate Starlark code (Python-like syntax) that builds a chart from the dataset described in the user's context.

Rules:
1. Refer to the dataset only through the variable 'df': df["column"] returns the column's values as a list, df.columns is the list of column names, df.head(n) returns the first n rows.
2. Build the chart only through 'plt': plt.bar(x, y), plt.line(x, y), plt.scatter(x, y), plt.pie(labels, values), plt.hist(values, bins), plt.title(s), plt.xlabel(s), plt.ylabel(s).
3. Helpers available on 'pd': pd.unique(seq), pd.value_counts(seq), pd.to_number(seq).
4. Only these built-ins are available: len, str, int, float, list, dict, range, enumerate, zip, max, min, sum. Do not use imports, comprehension is fine.
5. Choose the plot type from the data kinds (categorical vs numerical) and label axes and title clearly.
6. Always call plt.show() as the last statement.
7. Return only the code, no explanations and no markdown fences.`

// GenerateVisualizationCode asks the model for plotting code against the
// given dataset context and unwraps any markdown fences from the reply.
func (c *Client) GenerateVisualizationCode(ctx context.Context, model, datasetContext, userRequest string, maxTokens int, temperature float64) (string, error) {
	userPrompt := fmt.Sprintf("Dataset Context:\n%s\n\nUser Request: %s\n\nPlease generate the code to create this visualization.", datasetContext, userRequest)
	resp, err := c.Generate(ctx, GenerateRequest{
		Model: model,
		Messages: []Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty completion: no choices returned")
	}
	return UnwrapCodeFence(resp.Choices[0].Message.Content), nil
}

// UnwrapCodeFence strips a surrounding triple-backtick block, with or
// without a language tag. Text without a fence is returned trimmed.
func UnwrapCodeFence(s string) string {
	t := strings.TrimSpace(s)
	if !strings.HasPrefix(t, "```") {
		return t
	}
	t = strings.TrimPrefix(t, "```")
	// Drop a language tag on the opening fence line.
	if i := strings.IndexByte(t, '\n'); i >= 0 {
		first := strings.TrimSpace(t[:i])
		if first != "" && !strings.ContainsAny(first, " \t") {
			t = t[i+1:]
		}
	}
	if i := strings.LastIndex(t, "```"); i >= 0 {
		t = t[:i]
	}
	return strings.TrimSpace(t)
}
