package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// eventCodes is a sample of real play-by-play codes covering every branch
// of the translation pipeline.
var eventCodes = []string{
	"S8", "S7/G6", "D7/L7", "T9", "HR/F78", "HR/F9D",
	"K", "K23", "W", "IW", "HP",
	"31/G3", "643", "5643", "8/F8D", "5/L5", "3/P3",
	"SB2", "SB3", "CS2(26)", "CSH", "PO1(13)", "POCS2(134)",
	"E6/G6", "FC6/G6", "WP", "PB", "BK", "NP",
	"S8+2.3-H;2-H;1-3", "D8.1-H(E8)", "S9.2-H;1-3(95)",
}

func main() {
	targetURL := flag.String("url", "http://localhost:8080/v1/translate", "Target URL for translation requests")
	apiKey := flag.String("api-key", "supersecretkey", "API Key for authentication")
	concurrency := flag.Int("c", 10, "Number of concurrent workers")
	duration := flag.Duration("d", 30*time.Second, "Duration of the load test")
	rps := flag.Int("rps", 1000, "Requests per second limit")
	flag.Parse()

	log.Printf("Starting load test on %s", *targetURL)
	log.Printf("Concurrency: %d, Duration: %s, RPS: %d", *concurrency, *duration, *rps)

	var wg sync.WaitGroup
	var successCount, errorCount atomic.Int64
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	limiter := rate.NewLimiter(rate.Limit(*rps), 100) // Allow bursts up to 100

	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			client := &http.Client{
				Timeout: 5 * time.Second,
			}
			rng := rand.New(rand.NewSource(time.Now().UnixNano() + int64(workerID)))

			for {
				select {
				case <-ctx.Done():
					return
				default:
					limiter.Wait(ctx) // Wait for token from rate limiter

					code := eventCodes[rng.Intn(len(eventCodes))]
					payload := fmt.Sprintf(`{"event": %q}`, code)

					req, err := http.NewRequestWithContext(ctx, http.MethodPost, *targetURL, bytes.NewBufferString(payload))
					if err != nil {
						continue // Should not happen
					}
					req.Header.Set("Content-Type", "application/json")
					req.Header.Set("X-API-Key", *apiKey)
					req.Header.Set("X-Request-ID", uuid.NewString())

					resp, err := client.Do(req)
					if err != nil {
						errorCount.Add(1)
						continue
					}

					if resp.StatusCode == http.StatusOK {
						successCount.Add(1)
					} else {
						errorCount.Add(1)
					}
					resp.Body.Close()
				}
			}
		}(i)
	}

	wg.Wait()

	totalRequests := successCount.Load() + errorCount.Load()
	actualRPS := float64(totalRequests) / duration.Seconds()

	log.Println("Load test finished.")
	log.Printf("Total Requests: %d", totalRequests)
	log.Printf("Successful (200 OK): %d", successCount.Load())
	log.Printf("Errors: %d", errorCount.Load())
	log.Printf("Actual RPS: %.2f", actualRPS)
}
