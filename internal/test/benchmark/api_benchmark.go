package benchmark

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"sync"
	"time"
)

// APIBenchmark fires concurrent requests at a running server
type APIBenchmark struct {
	BaseURL     string
	Concurrency int
	Requests    int
	AuthToken   string
	Client      *http.Client
}

// BenchmarkResult summarises one run
type BenchmarkResult struct {
	URL            string        `json:"url"`
	Method         string        `json:"method"`
	Concurrency    int           `json:"concurrency"`
	TotalRequests  int           `json:"total_requests"`
	SuccessCount   int           `json:"success_count"`
	FailureCount   int           `json:"failure_count"`
	TotalTime      time.Duration `json:"total_time"`
	AverageTime    time.Duration `json:"average_time"`
	P95Time        time.Duration `json:"p95_time"`
	MaxTime        time.Duration `json:"max_time"`
	RequestsPerSec float64       `json:"requests_per_sec"`
	StatusCodes    map[int]int   `json:"status_codes"`
	Errors         []string      `json:"errors"`
}

// SuccessRate is the share of 2xx responses in percent
func (r *BenchmarkResult) SuccessRate() float64 {
	if r.TotalRequests == 0 {
		return 0
	}
	return float64(r.SuccessCount) / float64(r.TotalRequests) * 100
}

type requestResult struct {
	duration   time.Duration
	statusCode int
	err        error
}

// NewAPIBenchmark creates a benchmark against baseURL
func NewAPIBenchmark(baseURL string, concurrency, requests int, authToken string) *APIBenchmark {
	if concurrency < 1 {
		concurrency = 1
	}
	return &APIBenchmark{
		BaseURL:     baseURL,
		Concurrency: concurrency,
		Requests:    requests,
		AuthToken:   authToken,
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Do sends a single JSON request and decodes the response into dest
func (b *APIBenchmark) Do(method, path string, payload, dest interface{}) (int, error) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return 0, err
		}
		body = bytes.NewReader(raw)
	}

	req, err := b.newRequest(method, b.BaseURL+path, body)
	if err != nil {
		return 0, err
	}
	resp, err := b.Client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if dest != nil {
		if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
			return resp.StatusCode, fmt.Errorf("decode %s %s: %w", method, path, err)
		}
	}
	return resp.StatusCode, nil
}

// RunGET benchmarks a GET endpoint
func (b *APIBenchmark) RunGET(path string) *BenchmarkResult {
	return b.run(http.MethodGet, b.BaseURL+path, nil)
}

// RunPOST benchmarks a POST endpoint with a JSON payload
func (b *APIBenchmark) RunPOST(path string, payload interface{}) *BenchmarkResult {
	url := b.BaseURL + path
	raw, err := json.Marshal(payload)
	if err != nil {
		return &BenchmarkResult{URL: url, Method: http.MethodPost, Errors: []string{err.Error()}}
	}
	return b.run(http.MethodPost, url, raw)
}

func (b *APIBenchmark) newRequest(method, url string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if b.AuthToken != "" {
		req.Header.Set("Authorization", "Bearer "+b.AuthToken)
	}
	return req, nil
}

func (b *APIBenchmark) run(method, url string, payload []byte) *BenchmarkResult {
	results := make(chan requestResult, b.Requests)
	limiter := make(chan struct{}, b.Concurrency)
	var wg sync.WaitGroup

	startTime := time.Now()
	for i := 0; i < b.Requests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			limiter <- struct{}{}
			defer func() { <-limiter }()

			start := time.Now()
			req, err := b.newRequest(method, url, bytes.NewReader(payload))
			if err != nil {
				results <- requestResult{err: err}
				return
			}
			resp, err := b.Client.Do(req)
			if err != nil {
				results <- requestResult{err: err}
				return
			}
			_, _ = io.Copy(io.Discard, resp.Body)
			resp.Body.Close()

			results <- requestResult{duration: time.Since(start), statusCode: resp.StatusCode}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	result := &BenchmarkResult{
		URL:           url,
		Method:        method,
		Concurrency:   b.Concurrency,
		TotalRequests: b.Requests,
		StatusCodes:   make(map[int]int),
	}

	var durations []time.Duration
	var total time.Duration
	for r := range results {
		if r.err != nil {
			result.FailureCount++
			result.Errors = append(result.Errors, r.err.Error())
			continue
		}
		durations = append(durations, r.duration)
		total += r.duration
		result.StatusCodes[r.statusCode]++
		if r.statusCode >= 200 && r.statusCode < 300 {
			result.SuccessCount++
		} else {
			result.FailureCount++
		}
	}

	result.TotalTime = time.Since(startTime)
	if secs := result.TotalTime.Seconds(); secs > 0 {
		result.RequestsPerSec = float64(b.Requests) / secs
	}
	if n := len(durations); n > 0 {
		sort.Slice(durations, func(i, j int) bool { return durations[i] < durations[j] })
		result.AverageTime = total / time.Duration(n)
		result.P95Time = durations[(n*95-1)/100]
		result.MaxTime = durations[n-1]
	}
	return result
}

// PrintResult writes a human readable summary to stdout
func (r *BenchmarkResult) PrintResult() {
	fmt.Printf("%s %s\n", r.Method, r.URL)
	fmt.Printf("  concurrency: %d, requests: %d\n", r.Concurrency, r.TotalRequests)
	fmt.Printf("  success: %d, failure: %d (%.2f%%)\n", r.SuccessCount, r.FailureCount, r.SuccessRate())
	fmt.Printf("  total: %s, avg: %s, p95: %s, max: %s\n", r.TotalTime, r.AverageTime, r.P95Time, r.MaxTime)
	fmt.Printf("  throughput: %.2f req/s\n", r.RequestsPerSec)
	for code, count := range r.StatusCodes {
		fmt.Printf("  status %d: %d\n", code, count)
	}
	for i, err := range r.Errors {
		if i >= 5 {
			fmt.Printf("  ... %d more errors\n", len(r.Errors)-5)
			break
		}
		fmt.Printf("  error: %s\n", err)
	}
}
