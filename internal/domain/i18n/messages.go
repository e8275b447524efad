package i18n

//nolint:gochecknoglobals // static label tables
var koMessages = map[string]string{
	"compare.category.basic":        "기본 정보",
	"compare.category.admission":    "입학 정보",
	"compare.category.outcomes":     "학업 성과",
	"compare.field.location":        "위치",
	"compare.field.type":            "유형",
	"compare.field.size":            "규모",
	"compare.field.tuition":         "학비",
	"compare.field.acceptance-rate": "합격률",
	"compare.field.sat-range":       "SAT 범위",
	"compare.field.act-range":       "ACT 범위",
	"compare.field.gpa":             "평균 GPA",
	"compare.field.graduation-rate": "졸업률",
	"compare.field.degree-types":    "학위 과정",
	"compare.toast.added":           "{name}이(가) 비교 목록에 추가되었습니다.",
	"compare.toast.already-added":   "이미 비교 목록에 추가된 대학입니다.",
	"compare.toast.limit":           "최대 4개 대학까지 비교할 수 있습니다.",
	"compare.toast.not-enough":      "비교하려면 2개 이상의 대학을 선택하세요.",

	"universities.filter.sort.default":   "추천순",
	"universities.filter.sort.name-asc":  "이름순 (가-하)",
	"universities.filter.sort.name-desc": "이름순 (하-가)",
	"universities.filter.sort.sat-asc":   "SAT 낮은순",
	"universities.filter.sort.sat-desc":  "SAT 높은순",
	"universities.filter.type.private":   "사립",
	"universities.filter.type.public":    "공립",

	"requirement.required":       "필수",
	"requirement.optional":       "선택 (제출 시 고려)",
	"requirement.not-considered": "고려 안 됨",

	"requirement.label.gpa":                "GPA",
	"requirement.label.rank":               "학급 석차",
	"requirement.label.record":             "성적 증명서",
	"requirement.label.prepProgram":        "대학 준비 과정",
	"requirement.label.recommendations":    "추천서",
	"requirement.label.competencies":       "역량 증명",
	"requirement.label.workExperience":     "경력",
	"requirement.label.essay":              "에세이",
	"requirement.label.legacyStatus":       "레거시",
	"requirement.label.testScores":         "시험 점수",
	"requirement.label.englishProficiency": "영어 능력",

	"degree.bachelors": "학사",
	"degree.masters":   "석사",
	"degree.doctoral":  "박사",

	"score.label": "프로필 점수",
}

//nolint:gochecknoglobals // static label tables
var enMessages = map[string]string{
	"compare.category.basic":        "Basic Information",
	"compare.category.admission":    "Admission",
	"compare.category.outcomes":     "Academic Outcomes",
	"compare.field.location":        "Location",
	"compare.field.type":            "Type",
	"compare.field.size":            "Size",
	"compare.field.tuition":         "Tuition",
	"compare.field.acceptance-rate": "Acceptance Rate",
	"compare.field.sat-range":       "SAT Range",
	"compare.field.act-range":       "ACT Range",
	"compare.field.gpa":             "Average GPA",
	"compare.field.graduation-rate": "Graduation Rate",
	"compare.field.degree-types":    "Degree Types",
	"compare.toast.added":           "{name} has been added to your comparison list.",
	"compare.toast.already-added":   "This university is already in your comparison list.",
	"compare.toast.limit":           "You can compare up to 4 universities.",
	"compare.toast.not-enough":      "Select at least 2 universities to compare.",

	"universities.filter.sort.default":   "Recommended",
	"universities.filter.sort.name-asc":  "Name (A-Z)",
	"universities.filter.sort.name-desc": "Name (Z-A)",
	"universities.filter.sort.sat-asc":   "SAT (Low to High)",
	"universities.filter.sort.sat-desc":  "SAT (High to Low)",
	"universities.filter.type.private":   "Private",
	"universities.filter.type.public":    "Public",

	"requirement.required":       "Required",
	"requirement.optional":       "Optional (Considered if submitted)",
	"requirement.not-considered": "Not Considered",

	"requirement.label.gpa":                "GPA",
	"requirement.label.rank":               "Class Rank",
	"requirement.label.record":             "Transcript",
	"requirement.label.prepProgram":        "College Prep Program",
	"requirement.label.recommendations":    "Recommendations",
	"requirement.label.competencies":       "Demonstrated Competencies",
	"requirement.label.workExperience":     "Work Experience",
	"requirement.label.essay":              "Essay",
	"requirement.label.legacyStatus":       "Legacy Status",
	"requirement.label.testScores":         "Test Scores",
	"requirement.label.englishProficiency": "English Proficiency",

	"degree.bachelors": "Bachelor's",
	"degree.masters":   "Master's",
	"degree.doctoral":  "Doctoral",

	"score.label": "Profile Score",
}

//nolint:gochecknoglobals // static translation table
var sizeEnglish = map[string]string{
	"큼 (15,000+)":       "Large (15,000+)",
	"중간 (5,000-15,000)": "Medium (5,000-15,000)",
	"작음 (<5,000)":       "Small (<5,000)",
}

//nolint:gochecknoglobals // static translation table
var programKorean = map[string]string{
	"Agricultural/Animal/Plant/Veterinary Science and Related Fields": "농업/동물/식물/수의학",
	"Natural Resources and Conservation":                              "자연자원 및 보존",
	"Architecture and Related Services":                               "건축학",
	"Area, Ethnic, Cultural, Gender, and Group Studies":               "지역/민족/문화/젠더 연구",
	"Communication, Journalism, and Related Programs":                 "커뮤니케이션 및 저널리즘",
	"Communications Technologies/Technicians and Support Services":    "통신 기술",
	"Computer and Information Sciences and Support Services":          "컴퓨터 및 정보과학",
	"Personal and Culinary Services":                                  "요리 및 개인 서비스",
	"Education":                                                       "교육학",
	"Engineering":                                                     "공학",
	"Engineering/Engineering-related Technologies/Technicians":        "공학 기술",
	"Foreign Languages, Literatures, and Linguistics":                 "외국어 및 언어학",
	"Family and Consumer Sciences/Human Sciences":                     "가정학",
	"Legal Professions and Studies":                                   "법학",
	"English Language and Literature/Letters":                         "영문학",
	"Liberal Arts and Sciences, General Studies and Humanities":       "인문교양",
	"Library Science":                                                 "도서관학",
	"Biological and Biomedical Sciences":                              "생물학 및 의생명과학",
	"Mathematics and Statistics":                                      "수학 및 통계학",
	"Military Science and Military Technologies":                      "군사학",
	"Multi/Interdisciplinary Studies":                                 "융합전공",
	"Parks, Recreation, Leisure, and Fitness Studies":                 "레저 및 체육학",
	"Philosophy and Religious Studies":                                "철학 및 종교학",
	"Theology and Religious Vocations":                                "신학",
	"Physical Sciences":                                               "물리학",
	"Science Technologies/Technicians":                                "과학 기술",
	"Psychology":                                                      "심리학",
	"Homeland Security, Law Enforcement, Firefighting and Related":    "공공안전",
	"Public Administration and Social Service Professions":            "행정학 및 사회복지",
	"Social Sciences":                                                 "사회과학",
	"Construction Trades":                                             "건설 기술",
	"Mechanic and Repair Technologies/Technicians":                    "정비 기술",
	"Precision Production":                                            "정밀 생산",
	"Transportation and Materials Moving":                             "운송학",
	"Visual and Performing Arts":                                      "예술",
	"Health Professions and Related Programs":                         "보건의료",
	"Business, Management, Marketing, and Related Support Services":   "경영학",
	"History":                                                         "역사학",
}
