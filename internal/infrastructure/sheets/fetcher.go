package sheets

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"
)

// Fetcher 拉取公开发布的 Google Sheets CSV 导出
type Fetcher interface {
	FetchCSV(ctx context.Context, sheetID string) ([][]string, error)
}

type csvFetcher struct {
	client  *http.Client
	baseURL string
}

func NewCSVFetcher() Fetcher {
	return &csvFetcher{
		client:  &http.Client{Timeout: 15 * time.Second},
		baseURL: "https://docs.google.com/spreadsheets/d/%s/export?format=csv",
	}
}

// NewCSVFetcherWithBase 测试用，替换基础 URL
func NewCSVFetcherWithBase(base string) Fetcher {
	return &csvFetcher{
		client:  &http.Client{Timeout: 15 * time.Second},
		baseURL: base,
	}
}

func (f *csvFetcher) FetchCSV(ctx context.Context, sheetID string) ([][]string, error) {
	// 加时间戳防缓存，保证拿到最新数据
	url := fmt.Sprintf(f.baseURL, sheetID) + fmt.Sprintf("&t=%d", time.Now().UnixMilli())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("no se pudo acceder a la hoja: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sheet export returned status %d", resp.StatusCode)
	}

	// 外部内容按不可信文本处理：行宽不齐、引号不规范都放过
	reader := csv.NewReader(resp.Body)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv parse failed: %w", err)
	}
	return rows, nil
}

var sheetURLPattern = regexp.MustCompile(`/d/(.*?)(/|$)`)

// ExtractSheetID 从完整分享链接里抠出表格 ID；传进来的本身就是 ID 时原样返回
func ExtractSheetID(urlOrID string) (string, error) {
	if m := sheetURLPattern.FindStringSubmatch(urlOrID); m != nil {
		return m[1], nil
	}
	if urlOrID == "" || strings.Contains(urlOrID, "/") {
		return "", fmt.Errorf("URL de Google Sheets inválida")
	}
	return urlOrID, nil
}
