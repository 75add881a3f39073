package gateway

import (
	"context"
	"net/http"
)

type askRequest struct {
	Question string `json:"question"`
}

// AskResult is the document-QA service's answer, with the source passages it
// grounded the answer on.
type AskResult struct {
	Success  bool     `json:"success"`
	Answer   string   `json:"answer"`
	Contexts []string `json:"contexts,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// Ask forwards a question to the document-QA service backing the chat page.
func (c *Client) Ask(ctx context.Context, question string) (*AskResult, error) {
	var result AskResult
	if err := c.do(ctx, http.MethodPost, c.docqaURL+"api/ask", "", askRequest{Question: question}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
