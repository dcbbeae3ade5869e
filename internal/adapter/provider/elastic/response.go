package elastic

// toolRequest is the body of an Agent Builder tool execution.
type toolRequest struct {
	ToolID     string     `json:"tool_id"`
	ToolParams toolParams `json:"tool_params"`
}

type toolParams struct {
	RecentWords []string `json:"recent_words"`
}

// toolResponse mirrors results[0].data.execution of the tool response.
type toolResponse struct {
	Results []toolResult `json:"results"`
}

type toolResult struct {
	Data *toolData `json:"data"`
}

type toolData struct {
	Execution *toolExecution `json:"execution"`
}

// toolExecution carries the agent output as a JSON-encoded string.
type toolExecution struct {
	Status string `json:"status"`
	Output string `json:"output"`
}
