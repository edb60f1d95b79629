package model

import (
	"strconv"
)

const (
	// DefaultMaxResults search.list 默认返回条数
	DefaultMaxResults int64 = 25
	// MaxResultsLimit YouTube search.list 单次允许的最大条数
	MaxResultsLimit int64 = 50
)

// Location 经纬度
type Location struct {
	Latitude  float64
	Longitude float64
}

// String 按 YouTube location 参数格式输出 "lat,lng"
func (l Location) String() string {
	return formatFloat(l.Latitude) + "," + formatFloat(l.Longitude)
}

// Region 从表单 coordinates 字段解析出的圆形区域，Radius 单位为米
type Region struct {
	Latitude  float64
	Longitude float64
	Radius    float64
}

// Location 返回区域中心点
func (r Region) Location() Location {
	return Location{Latitude: r.Latitude, Longitude: r.Longitude}
}

// RadiusParam 按 YouTube locationRadius 参数格式输出，如 "5000m"
func (r Region) RadiusParam() string {
	return formatFloat(r.Radius) + "m"
}

// QueryRequest 一次视频搜索的筛选条件
// 空字符串表示未设置，由 API 使用默认值
type QueryRequest struct {
	Query          string
	Location       *Location
	LocationRadius string
	MaxResults     int64

	EventType  string
	Order      string
	SafeSearch string
	Caption    string
	CategoryID string
	Definition string
	Dimension  string
	Duration   string

	// RFC 3339 UTC，如 2016-01-02T13:05:00Z
	PublishedAfter  string
	PublishedBefore string
}

// NewQueryRequest 创建带默认值的搜索请求
func NewQueryRequest() *QueryRequest {
	return &QueryRequest{MaxResults: DefaultMaxResults}
}

// HasLocation 是否带地理约束
func (q *QueryRequest) HasLocation() bool {
	return q.Location != nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
