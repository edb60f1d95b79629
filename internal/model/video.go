package model

// VideoInfo 播放列表页面展示用的视频信息
type VideoInfo struct {
	ID           string
	Title        string
	ChannelTitle string
	Description  string
	PublishedAt  string
	ThumbnailURL string
	Duration     string // ISO 8601，如 PT4M13S
	ViewCount    uint64

	// 拍摄地点（recordingDetails），多数视频没有
	Latitude  *float64
	Longitude *float64
}

// HasLocation 是否带拍摄地点
func (v VideoInfo) HasLocation() bool {
	return v.Latitude != nil && v.Longitude != nil
}
