package feedback

import "sort"

// PainPointTriggers are the management pain-point cue words, in declared
// order. A free-text segment counts as a pain-point phrase when any
// trigger occurs in it as a substring.
var PainPointTriggers = []string{
	"难", "不足", "缺乏", "希望", "需要", "问题", "挑战", "压力", "不够", "改善", "提升",
	"困惑", "不知道", "平衡", "时间", "精力", "带人", "管人", "辅导", "反馈", "授权",
	"激励", "任务", "沟通", "下属", "团队", "学习", "成长", "期待", "担心", "焦虑",
	"协调", "冲突", "效率", "方法", "技巧", "经验", "能力", "加强", "更多", "管理",
	"改进", "完善", "支持", "帮助", "指导", "培养", "发展", "角色", "转型",
}

// TriggerDisplay maps a trigger to its theme display name. Triggers
// absent from the map use the trigger text itself as the theme.
var TriggerDisplay = map[string]string{
	"时间":  "时间与精力分配",
	"精力":  "时间与精力分配",
	"平衡":  "时间与精力分配",
	"压力":  "压力与心态",
	"焦虑":  "压力与心态",
	"担心":  "压力与心态",
	"辅导":  "辅导与反馈",
	"反馈":  "辅导与反馈",
	"沟通":  "沟通与协作",
	"协调":  "沟通与协作",
	"冲突":  "沟通与协作",
	"授权":  "授权与任务分配",
	"任务":  "授权与任务分配",
	"激励":  "激励与团队",
	"团队":  "激励与团队",
	"下属":  "激励与团队",
	"带人":  "带人与管人",
	"管人":  "带人与管人",
	"管理":  "管理角色与转型",
	"角色":  "管理角色与转型",
	"转型":  "管理角色与转型",
	"学习":  "学习与成长",
	"成长":  "学习与成长",
	"能力":  "能力与方法",
	"方法":  "能力与方法",
	"技巧":  "能力与方法",
	"经验":  "能力与方法",
	"效率":  "效率与改进",
	"改善":  "效率与改进",
	"改进":  "效率与改进",
	"提升":  "提升与完善",
	"完善":  "提升与完善",
	"希望":  "期待与需求",
	"需要":  "期待与需求",
	"期待":  "期待与需求",
	"支持":  "支持与指导",
	"帮助":  "支持与指导",
	"指导":  "支持与指导",
	"培养":  "支持与指导",
	"发展":  "支持与指导",
	"问题":  "问题与挑战",
	"挑战":  "问题与挑战",
	"困惑":  "问题与挑战",
	"不知道": "问题与挑战",
	"难":   "问题与挑战",
	"不足":  "不足与缺乏",
	"缺乏":  "不足与缺乏",
	"不够":  "不足与缺乏",
	"更多":  "更多诉求",
	"加强":  "更多诉求",
}

// StopwordsCN filters multi-character tokens out of keyword frequency
// counts.
var StopwordsCN = map[string]bool{
	"的": true, "了": true, "是": true, "在": true, "我": true, "有": true,
	"和": true, "就": true, "不": true, "人": true, "都": true, "一": true,
	"一个": true, "上": true, "也": true, "很": true, "到": true, "说": true,
	"要": true, "去": true, "你": true, "会": true, "着": true, "没有": true,
	"看": true, "好": true, "自己": true, "这": true, "那": true, "等": true,
	"能": true, "与": true, "及": true, "或": true, "而": true, "把": true,
	"被": true, "让": true, "给": true, "无": true, "可以": true, "能够": true,
	"一些": true, "什么": true, "怎么": true, "如何": true, "为什么": true,
}

// SingleCharStop filters single-character tokens, a stricter list than
// StopwordsCN since lone characters are rarely informative.
var SingleCharStop = map[string]bool{
	"的": true, "了": true, "是": true, "在": true, "我": true, "有": true,
	"和": true, "就": true, "不": true, "人": true, "都": true, "一": true,
	"上": true, "也": true, "很": true, "到": true, "说": true, "要": true,
	"去": true, "你": true, "会": true, "着": true, "没": true, "看": true,
	"好": true, "自": true, "这": true, "那": true, "等": true, "能": true,
	"与": true, "及": true, "或": true, "而": true, "把": true, "被": true,
	"让": true, "给": true, "无": true, "可": true, "以": true, "够": true,
	"些": true, "什": true, "么": true, "怎": true, "如": true, "为": true,
}

// triggerPriority orders triggers for phrase classification: longer
// triggers first so "不知道" beats "知道"-like overlaps, ties broken by
// declared order. The sort is stable so declared order survives.
func triggerPriority() []string {
	ordered := make([]string, len(PainPointTriggers))
	copy(ordered, PainPointTriggers)
	sort.SliceStable(ordered, func(i, j int) bool {
		return len([]rune(ordered[i])) > len([]rune(ordered[j]))
	})
	return ordered
}
