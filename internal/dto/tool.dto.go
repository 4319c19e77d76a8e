package dto

type ToolDTO struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Arguments   []string `json:"arguments"`
}

type ToolResultDTO struct {
	Tool   string `json:"tool"`
	Result string `json:"result"`
}
