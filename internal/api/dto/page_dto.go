package dto

import (
	"strings"

	"videolocale-go/internal/model"
)

// MainPageData 首页模板数据
type MainPageData struct {
	Filters      model.Filters
	MapboxAPIKey string
}

// PlaylistPageData 播放列表页模板数据
type PlaylistPageData struct {
	PlaylistID   string
	Videos       []model.VideoInfo
	MapboxAPIKey string
}

// HasLocations 是否有视频带拍摄地点，用于决定是否渲染地图
func (p *PlaylistPageData) HasLocations() bool {
	for _, v := range p.Videos {
		if v.HasLocation() {
			return true
		}
	}
	return false
}

// EmbedURL 返回 YouTube 嵌入播放器地址，第一个视频为当前视频，其余作为播放列表
func (p *PlaylistPageData) EmbedURL() string {
	if len(p.Videos) == 0 {
		return ""
	}
	url := "https://www.youtube.com/embed/" + p.Videos[0].ID
	if len(p.Videos) > 1 {
		rest := make([]string, 0, len(p.Videos)-1)
		for _, v := range p.Videos[1:] {
			rest = append(rest, v.ID)
		}
		url += "?playlist=" + strings.Join(rest, ",")
	}
	return url
}
