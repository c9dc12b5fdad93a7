package chat

// User-facing replies. Error taxonomy: validation failures and collaborator
// outages become replies with empty results; unrelated input is a designed
// refusal, not an error.
const (
	ReplyRefusal          = "죄송합니다. 저는 일자리 검색과 관련된 질문에만 답변할 수 있습니다."
	ReplyConditionUpdated = "조건을 업데이트했습니다."
	ReplyExtractionFailed = "요청을 처리하지 못했습니다. 잠시 후 다시 시도해주세요."
	ReplyConditionInvalid = "입력하신 조건을 적용할 수 없어 검색하지 못했습니다. 조건을 확인해주세요."
	ReplySearchFailed     = "검색에 실패했습니다. 잠시 후 다시 시도해주세요."
	ReplyNoCriteria       = "검색 조건이 없습니다. 원하시는 일자리 조건을 말씀해주세요."
	ReplyNoMatch          = "조건에 맞는 일자리를 찾지 못했습니다. 다른 조건으로 검색해보세요."
	ReplyNoMatchInResults = "결과내검색에서 조건에 맞는 일자리를 찾지 못했습니다."
)
