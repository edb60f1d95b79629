package service

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"videolocale-go/internal/api/dto"
	"videolocale-go/internal/model"
)

// FormLookup 表单取值函数，签名与 gin.Context.GetPostForm 一致
type FormLookup func(key string) (string, bool)

// formDateLayout 表单日期格式 MM/DD/YYYY hh:mm AM|PM，月/日/时允许不补零
const formDateLayout = "1/2/2006 3:04 PM"

var regionPattern = regexp.MustCompile(`\[\((-?\d+\.?\d*),(-?\d+\.?\d*)\),(\d+\.?\d*)m\]`)

// ParseRegions 从 coordinates 字段中按出现顺序解析 [(lat,lng),radiusm]
// 不匹配的片段直接跳过
func ParseRegions(s string) []model.Region {
	matches := regionPattern.FindAllStringSubmatch(s, -1)
	regions := make([]model.Region, 0, len(matches))
	for _, m := range matches {
		lat, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		lng, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			continue
		}
		radius, err := strconv.ParseFloat(m[3], 64)
		if err != nil {
			continue
		}
		regions = append(regions, model.Region{Latitude: lat, Longitude: lng, Radius: radius})
	}
	return regions
}

type fieldSetter struct {
	field string
	apply func(req *model.QueryRequest, value string)
}

// filterSetters 非地理筛选条件，按表单字段逐个应用到每个请求
var filterSetters = []fieldSetter{
	{dto.FieldQuery, func(r *model.QueryRequest, v string) { r.Query = v }},
	{dto.FieldNumResults, setMaxResults},
	{dto.FieldEventType, func(r *model.QueryRequest, v string) { r.EventType = v }},
	{dto.FieldResultOrder, func(r *model.QueryRequest, v string) { r.Order = v }},
	{dto.FieldSafeSearch, func(r *model.QueryRequest, v string) { r.SafeSearch = v }},
	{dto.FieldCaptions, func(r *model.QueryRequest, v string) { r.Caption = v }},
	{dto.FieldCategory, func(r *model.QueryRequest, v string) { r.CategoryID = v }},
	{dto.FieldDefinition, func(r *model.QueryRequest, v string) { r.Definition = v }},
	{dto.FieldDimension, func(r *model.QueryRequest, v string) { r.Dimension = v }},
	{dto.FieldDuration, func(r *model.QueryRequest, v string) { r.Duration = v }},
	{dto.FieldStartDate, func(r *model.QueryRequest, v string) {
		if ts, ok := ParseFormDate(v); ok {
			r.PublishedAfter = ts
		}
	}},
	{dto.FieldEndDate, func(r *model.QueryRequest, v string) {
		if ts, ok := ParseFormDate(v); ok {
			r.PublishedBefore = ts
		}
	}},
}

// BuildQueryRequests 每个区域生成一个请求；没有区域时生成一个不带地理约束的请求
// 所有请求共享同一组筛选条件，但各自持有独立的对象
func BuildQueryRequests(form FormLookup, regions []model.Region, defaultMaxResults int64) []*model.QueryRequest {
	newRequest := func() *model.QueryRequest {
		req := model.NewQueryRequest()
		if defaultMaxResults > 0 {
			req.MaxResults = clampMaxResults(defaultMaxResults)
		}
		return req
	}

	var requests []*model.QueryRequest
	if len(regions) == 0 {
		requests = append(requests, newRequest())
	} else {
		for _, region := range regions {
			req := newRequest()
			loc := region.Location()
			req.Location = &loc
			req.LocationRadius = region.RadiusParam()
			requests = append(requests, req)
		}
	}

	for _, setter := range filterSetters {
		value, ok := form(setter.field)
		if !ok {
			continue
		}
		for _, req := range requests {
			setter.apply(req, value)
		}
	}

	return requests
}

// ParseFormDate 解析表单日期并转为 RFC 3339 UTC 字符串，失败返回 ok=false
func ParseFormDate(value string) (string, bool) {
	t, err := time.Parse(formDateLayout, strings.ToUpper(strings.TrimSpace(value)))
	if err != nil {
		return "", false
	}
	return t.UTC().Format(time.RFC3339), true
}

func setMaxResults(req *model.QueryRequest, value string) {
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return
	}
	req.MaxResults = clampMaxResults(n)
}

func clampMaxResults(n int64) int64 {
	if n < 1 {
		return 1
	}
	if n > model.MaxResultsLimit {
		return model.MaxResultsLimit
	}
	return n
}
