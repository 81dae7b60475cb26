package add_comment

// AddCommentRequest HTTP request model
// Пустой текст и длину проверяет сервис
type AddCommentRequest struct {
	Text string `json:"text"`
}
