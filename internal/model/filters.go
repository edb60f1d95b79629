package model

// FilterOption 筛选项
type FilterOption struct {
	Value string
	Label string
}

// Filters 首页可选的搜索筛选项，取值与 YouTube search.list 参数一致
type Filters struct {
	EventTypes  []FilterOption
	Orders      []FilterOption
	SafeSearch  []FilterOption
	Captions    []FilterOption
	Categories  []FilterOption
	Definitions []FilterOption
	Dimensions  []FilterOption
	Durations   []FilterOption
}

// DefaultFilters 返回首页渲染用的筛选项
func DefaultFilters() Filters {
	return Filters{
		EventTypes: []FilterOption{
			{"completed", "Completed broadcasts"},
			{"live", "Live broadcasts"},
			{"upcoming", "Upcoming broadcasts"},
		},
		Orders: []FilterOption{
			{"relevance", "Relevance"},
			{"date", "Upload date"},
			{"rating", "Rating"},
			{"title", "Title"},
			{"viewCount", "View count"},
		},
		SafeSearch: []FilterOption{
			{"moderate", "Moderate"},
			{"none", "None"},
			{"strict", "Strict"},
		},
		Captions: []FilterOption{
			{"any", "Any"},
			{"closedCaption", "With captions"},
			{"none", "Without captions"},
		},
		Categories: []FilterOption{
			{"1", "Film & Animation"},
			{"2", "Autos & Vehicles"},
			{"10", "Music"},
			{"15", "Pets & Animals"},
			{"17", "Sports"},
			{"19", "Travel & Events"},
			{"20", "Gaming"},
			{"22", "People & Blogs"},
			{"23", "Comedy"},
			{"24", "Entertainment"},
			{"25", "News & Politics"},
			{"26", "Howto & Style"},
			{"27", "Education"},
			{"28", "Science & Technology"},
			{"29", "Nonprofits & Activism"},
		},
		Definitions: []FilterOption{
			{"any", "Any"},
			{"high", "HD"},
			{"standard", "SD"},
		},
		Dimensions: []FilterOption{
			{"any", "Any"},
			{"2d", "2D"},
			{"3d", "3D"},
		},
		Durations: []FilterOption{
			{"any", "Any"},
			{"short", "Short (< 4 min)"},
			{"medium", "Medium (4-20 min)"},
			{"long", "Long (> 20 min)"},
		},
	}
}
