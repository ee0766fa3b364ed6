package service

import (
	"sort"

	"github.com/kube-rca/incident-predictor/internal/model"
)

// TopServiceLimit - 서비스 순위 차트에 표시할 최대 개수
const TopServiceLimit = 5

// TopServices - service 별 건수, 내림차순, 상위 limit 개
// 동률은 처음 등장한 순서를 유지한다.
func TopServices(incidents []model.Incident, limit int) []model.ChartPoint {
	points := countBy(incidents, func(i model.Incident) string { return i.Service })

	sort.SliceStable(points, func(a, b int) bool {
		return points[a].Value > points[b].Value
	})

	if limit >= 0 && len(points) > limit {
		points = points[:limit]
	}
	return points
}

// PriorityDistribution - priority 별 건수, 처음 등장한 순서 그대로
func PriorityDistribution(incidents []model.Incident) []model.ChartPoint {
	return countBy(incidents, func(i model.Incident) string { return i.Priority })
}

func countBy(incidents []model.Incident, key func(model.Incident) string) []model.ChartPoint {
	points := []model.ChartPoint{}
	index := make(map[string]int)

	for _, inc := range incidents {
		k := key(inc)
		if pos, ok := index[k]; ok {
			points[pos].Value++
			continue
		}
		index[k] = len(points)
		points = append(points, model.ChartPoint{Name: k, Value: 1})
	}
	return points
}
