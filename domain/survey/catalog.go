package survey

// CatalogEntry maps a survey question to its dimension and behavior. A raw
// column is bound to the entry when the keyword occurs as a substring of
// the trimmed column header.
type CatalogEntry struct {
	Keyword   string
	Dimension string
	Behavior  string
}

// Catalog is an ordered question catalog. Entries are scanned in declared
// order and each entry binds the first matching column; the first entry
// that claims a column wins.
type Catalog []CatalogEntry

// ScoreScale maps the five self-assessment labels to their numeric scores.
type ScoreScale map[string]float64

// DefaultScoreScale is the fixed five-point scale used by the survey.
// Any other cell text becomes a missing score, never an error.
func DefaultScoreScale() ScoreScale {
	return ScoreScale{
		"总是如此": 5,
		"经常如此": 4,
		"有时如此": 3,
		"很少如此": 2,
		"从未展现": 1,
	}
}

// DimensionOrder is the fixed display order of the five management
// dimensions.
var DimensionOrder = []string{"管理角色认知", "辅导", "任务分配", "激励", "沟通"}

// DefaultCatalog returns the 22-question catalog of the new-manager survey.
// Keywords are distinctive fragments of each question's behavior
// description and are mutually exclusive on real headers.
func DefaultCatalog() Catalog {
	return Catalog{
		{Keyword: "亲力亲为", Dimension: "管理角色认知", Behavior: "工作理念"},
		{Keyword: "目标规划", Dimension: "管理角色认知", Behavior: "时间管理"},
		{Keyword: "所言即所行", Dimension: "管理角色认知", Behavior: "言行合一"},
		{Keyword: "谦虚的态度", Dimension: "管理角色认知", Behavior: "接受反馈"},
		{Keyword: "低于预期", Dimension: "辅导", Behavior: "主动辅导"},
		{Keyword: "及时的、充分的反馈", Dimension: "辅导", Behavior: "及时反馈"},
		{Keyword: "搜集多方信息", Dimension: "辅导", Behavior: "确定方向"},
		{Keyword: "方法与资源", Dimension: "辅导", Behavior: "预先思考"},
		{Keyword: "提问引导", Dimension: "辅导", Behavior: "巧妙提问"},
		{Keyword: "定期考察", Dimension: "辅导", Behavior: "跟踪结果"},
		{Keyword: "综合评估", Dimension: "任务分配", Behavior: "综合评估"},
		{Keyword: "自己做决策", Dimension: "任务分配", Behavior: "授权下属"},
		{Keyword: "期望的成果", Dimension: "任务分配", Behavior: "清楚委任"},
		{Keyword: "衡量标准", Dimension: "任务分配", Behavior: "跟踪进度"},
		{Keyword: "兴趣和能力", Dimension: "激励", Behavior: "激发热情"},
		{Keyword: "工作的价值", Dimension: "激励", Behavior: "认可价值"},
		{Keyword: "团队氛围", Dimension: "激励", Behavior: "营造氛围"},
		{Keyword: "发展计划", Dimension: "激励", Behavior: "规划发展"},
		{Keyword: "充分表达观点", Dimension: "沟通", Behavior: "认真倾听"},
		{Keyword: "眼神交流", Dimension: "沟通", Behavior: "积极回应"},
		{Keyword: "想法、理由和感受", Dimension: "沟通", Behavior: "坦诚表达"},
		{Keyword: "耐心提问", Dimension: "沟通", Behavior: "提问澄清"},
	}
}

// NameColumns are the respondent-name headers checked in preference order.
var NameColumns = []string{"填写人", "姓名", "学员姓名"}

// DepartmentColumn is the optional department header.
const DepartmentColumn = "部门"

// OpenQuestionColumns are the configured open-text headers; when none match
// the table, open-text columns are discovered heuristically (see report
// package).
var OpenQuestionColumns = []string{"您对这次培训还有哪些期待？"}

// LearningModuleColumn is the multi-select "which module to study further"
// question.
const LearningModuleColumn = "您希望在以下哪个技能模块进行深入的学习和研讨？"

// TenureColumn is the management-tenure question.
const TenureColumn = "您开始带团队有多久啦？"

// TeamSizeColumn is the team-size question.
const TeamSizeColumn = "向您直接汇报的伙伴有多少？"
