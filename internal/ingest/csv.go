// Package ingest converts uploaded incident CSV text into model.Incident records.
//
// 기본 모드는 단순 분리 방식이다:
//   - 첫 줄은 헤더로 보고 무조건 버린다 (컬럼명 검증 없음)
//   - 공백뿐인 줄은 건너뛴다
//   - 나머지 줄은 ',' 로 나눈다 (따옴표/escape 미지원, 필드 내부 콤마는 컬럼이 밀림)
//
// QuotedFields 모드는 encoding/csv 로 따옴표 필드를 지원한다. 결과가 달라질 수 있으므로
// 명시적으로 켜야 한다.
package ingest

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/kube-rca/incident-predictor/internal/model"
)

const (
	DefaultDescription = "No Description"
	DefaultService     = "General"
	DefaultAPIEndpoint = "N/A"
	DefaultPriority    = "P3"
	IngestedState      = "Resolved"

	numberPrefix = "INC"

	// JS Date.toISOString 과 같은 형태
	createdLayout = "2006-01-02T15:04:05.000Z"
)

type Option func(*Parser)

// WithQuotedFields - 따옴표 필드를 지원하는 CSV reader 사용
func WithQuotedFields(enabled bool) Option {
	return func(p *Parser) {
		p.quoted = enabled
	}
}

// WithClock - created 값에 쓰일 시계 (테스트용)
func WithClock(now func() time.Time) Option {
	return func(p *Parser) {
		p.now = now
	}
}

type Parser struct {
	quoted bool
	now    func() time.Time
}

func NewParser(opts ...Option) *Parser {
	p := &Parser{now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse - CSV 텍스트 전체를 incident 목록으로 변환
// 어떤 행도 거부하지 않는다. 빠진 값은 기본값으로 채운다.
func (p *Parser) Parse(text string) []model.Incident {
	created := p.now().UTC().Format(createdLayout)

	var rows [][]string
	if p.quoted {
		rows = quotedRows(text)
	} else {
		rows = plainRows(text)
	}

	incidents := make([]model.Incident, 0, len(rows))
	for idx, values := range rows {
		incidents = append(incidents, model.Incident{
			Number:           field(values, 0, numberPrefix+strconv.Itoa(idx)),
			ShortDescription: field(values, 1, DefaultDescription),
			Service:          field(values, 2, DefaultService),
			APIEndpoint:      field(values, 3, DefaultAPIEndpoint),
			Priority:         field(values, 4, DefaultPriority),
			State:            IngestedState,
			Created:          created,
		})
	}
	return incidents
}

func plainRows(text string) [][]string {
	lines := strings.Split(text, "\n")
	if len(lines) <= 1 {
		return nil
	}

	rows := make([][]string, 0, len(lines)-1)
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, strings.Split(line, ","))
	}
	return rows
}

func quotedRows(text string) [][]string {
	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var rows [][]string
	header := true
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// 읽을 수 없는 나머지는 버린다. 이미 읽은 행은 유지.
			break
		}
		if header {
			header = false
			continue
		}
		// 공백뿐인 줄은 단일 필드로 읽힌다
		if len(record) == 1 && strings.TrimSpace(record[0]) == "" {
			continue
		}
		rows = append(rows, record)
	}
	return rows
}

func field(values []string, idx int, fallback string) string {
	if idx >= len(values) {
		return fallback
	}
	if v := strings.TrimSpace(values[idx]); v != "" {
		return v
	}
	return fallback
}
