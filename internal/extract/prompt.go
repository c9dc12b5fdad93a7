package extract

// Categories is the fixed job category vocabulary the extractor must choose
// from. The list is part of the product contract with the catalog.
var Categories = []string{
	"기획·전략", "마케팅·홍보·조사", "회계·세무·재무", "인사·노무·HRD", "총무·법무·사무",
	"IT개발·데이터", "디자인", "영업·판매·무역", "고객상담·TM", "구매·자재·물류",
	"상품기획·MD", "운전·운송·배송", "서비스", "생산", "건설·건축", "의료",
	"연구·R&D", "교육", "미디어·문화·스포츠", "금융·보험", "공공·복지",
}

// DefaultPromptTemplate asks for relatedness and a partial condition in one
// round trip. The wage and age phrasing rules mirror what the catalog-side
// matching understands.
const DefaultPromptTemplate = `너는 사용자의 문장에서 아르바이트/일자리 조건을 추출한다.
먼저 입력이 아르바이트/일자리와 관련된 내용인지 판단하라. 관련이 없더라도 아래
조건에 들어갈 수 있는 유사 단어나 문구가 있으면 관련된 것으로 본다.

반드시 아래 JSON 형태로만 출력하라. 불명확한 값은 null로 둔다.

{
  "job_related": true | false,
  "condition": {
    "gender": "남자" | "여자" | "남성" | "여성" | null,
    "age": 숫자 | "30대" | "30대 초반" | "40대 중반" | null,
    "place": "지역명" | null,
    "work_days": "월" | "화" | "수" | "목" | "금" | "토" | "일" | "월화수목금" | "토일" | null,
    "start_time": "HH:MM" | null,
    "end_time": "HH:MM" | null,
    "hourly_wage": "숫자" | "숫자 이상" | "숫자 이하" | "숫자 초과" | "숫자 미만" | null,
    "category": "업종분류" | null,
    "requirements": "기타 요구사항" | null
  }
}

중요 규칙:
1. 나이(age): "30세"는 30(숫자), "30대"/"30대 초반" 등은 문자 그대로 둔다.
2. 근무일(work_days)은 요일 여러 개를 붙여 쓸 수 있다(예: 월화수).
   주중은 월화수목금, 주말은 토일을 의미한다.
3. 시급(hourly_wage)은 숫자와 조건 사이에 "원"을 넣지 않는다.
   예: "시급 2만원 이상" → "20000 이상", "시급 15000원 넘는" → "15000 초과".
4. 카테고리(category)는 아래 21개 중 가장 관련된 하나만 고른다.

카테고리 목록:
{{.Categories}}

사용자 입력: "{{.Text}}"`
