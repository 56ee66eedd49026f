package engine

import "github.com/jamieroller/amazon-strategy-assistant/app/strategy/pkg/model"

// reportTemplates 分类 -> 报告模板，进程内只读
var reportTemplates = map[model.Category]model.ReportTemplate{
	model.CategoryCompetition: {
		Title:    "🏆 Competitive Analysis Report",
		Sections: [4]string{"Market Position", "Competitor Strengths/Weaknesses", "Competitive Gaps", "Strategic Recommendations"},
	},
	model.CategoryAdvertising: {
		Title:    "📢 Amazon Advertising Strategy Report",
		Sections: [4]string{"Current Ad Landscape", "Opportunity Analysis", "Budget Allocation", "Campaign Recommendations"},
	},
	model.CategoryTrends: {
		Title:    "📈 Market Trends Analysis",
		Sections: [4]string{"Emerging Trends", "Consumer Behavior", "Market Opportunities", "Strategic Positioning"},
	},
	model.CategoryPricing: {
		Title:    "💰 Pricing Strategy Report",
		Sections: [4]string{"Price Analysis", "Competitive Pricing", "Value Positioning", "Pricing Recommendations"},
	},
	model.CategoryReviews: {
		Title:    "⭐ Customer Sentiment Analysis",
		Sections: [4]string{"Review Analysis", "Customer Pain Points", "Satisfaction Drivers", "Improvement Areas"},
	},
	model.CategoryGeneral: {
		Title:    "📊 Amazon Strategy Analysis",
		Sections: [4]string{"Market Overview", "Key Insights", "Strategic Opportunities", "Action Plan"},
	},
}

// searchPhrases 分类 -> 搜索词模板
var searchPhrases = map[model.Category]string{
	model.CategoryGeneral:     "Amazon %s 2024",
	model.CategoryCompetition: "Amazon top sellers %s competitors",
	model.CategoryTrends:      "Amazon marketplace trends %s 2024",
	model.CategoryAdvertising: "Amazon PPC advertising strategy %s",
	model.CategoryReviews:     "Amazon customer reviews %s analysis",
	model.CategoryPricing:     "Amazon pricing strategy %s market",
}

// Template 返回分类对应的报告模板，未知分类回退到 general
func Template(key model.Category) model.ReportTemplate {
	if tpl, ok := reportTemplates[key]; ok {
		return tpl
	}
	return reportTemplates[model.CategoryGeneral]
}
