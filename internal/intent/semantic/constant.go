package semantic

import "time"

// Log prefixes
const (
	logPrefixMatch          = "internal.intent.semantic.Match"
	logPrefixLLMMatch       = "internal.intent.semantic.LLMReasoner.MatchIntent"
	logPrefixLLMExtract     = "internal.intent.semantic.LLMReasoner.ExtractContent"
	logPrefixLLMGenerate    = "internal.intent.semantic.LLMReasoner.generate"
	logPrefixRemoteReasoner = "internal.intent.semantic.RemoteReasoner"
)

const (
	// DefaultTimeout bounds one reasoner call.
	DefaultTimeout = 5 * time.Second

	// MinUsableConfidence is the lowest verdict confidence turned into a candidate.
	MinUsableConfidence = 0.5
)

// Reasoning service routes, relative to its base URL.
const (
	PathSemanticMatch  = "/chat/semantic-match"
	PathExtractContent = "/chat/extract-content"
)

// LLM prompts
const (
	llmTemperature = 0.1

	promptMatchSystem = `Bạn là bộ phân loại lệnh cho trợ lý nội bộ của nhà máy.
Nhiệm vụ: chọn MỘT chức năng phù hợp nhất với câu lệnh của người dùng từ danh sách được cung cấp.
Nếu không có chức năng nào phù hợp, trả về intentId là null.

Trả về JSON với format:
{
  "intentId": "<id trong danh sách hoặc null>",
  "confidence": 0.0-1.0,
  "reason": "Giải thích ngắn gọn",
  "params": {"<tên tham số>": "<giá trị>"}
}`

	promptMatchUser = `Câu lệnh: "%s"
Vai trò người dùng: %s

Danh sách chức năng (JSON):
%s`

	promptExtractSystem = `Bạn tách câu lệnh của người dùng thành phần lệnh và phần nội dung.
Chỉ giữ lại phần nội dung thực sự (không lặp lại các từ như "tạo tin", "đặt phòng").

Trả về JSON với format:
{
  "content": "nội dung",
  "title": "tiêu đề ngắn (tối đa 80 ký tự)",
  "category": "danh mục nếu xác định được",
  "isPriority": true|false,
  "params": {}
}`

	promptExtractUser = `Chức năng: %s
Câu lệnh: "%s"`
)
