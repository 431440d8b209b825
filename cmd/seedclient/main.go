package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"singmeasong/gen"
	"singmeasong/internal/grpcutil"
)

func main() {
	addr := flag.String("addr", "localhost:8082", "recommendation service gRPC address")
	file := flag.String("file", "seed.txt", "file with one name,youtubeLink pair per line")
	cert := flag.String("cert", "", "TLS certificate")
	key := flag.String("key", "", "TLS key")
	flag.Parse()

	creds, err := grpcutil.TransportCredentials(*cert, *key)
	if err != nil {
		log.Fatalf("Failed to load credentials: %v", err)
	}
	conn, err := grpc.NewClient(*addr, grpc.WithTransportCredentials(creds))
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer conn.Close()
	client := gen.NewRecommendationServiceClient(conn)
	n, err := seedFile(context.Background(), client, *file)
	if err != nil {
		log.Fatalf("Failed to seed recommendations: %v", err)
	}
	fmt.Println("Inserted recommendations: ", n)
}

// seedFile inserts every line of filePath. Names that already exist are skipped.
func seedFile(ctx context.Context, client gen.RecommendationServiceClient, filePath string) (int, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return 0, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	inserted := 0
	scanner := bufio.NewScanner(file)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		req, err := parseLine(text)
		if err != nil {
			return inserted, fmt.Errorf("line %d: %w", line, err)
		}
		if _, err := client.Insert(ctx, req); err != nil {
			if status.Code(err) == codes.AlreadyExists {
				log.Printf("Skipping existing recommendation %q", req.Name)
				continue
			}
			return inserted, fmt.Errorf("line %d: failed to insert: %w", line, err)
		}
		inserted++
	}
	if err := scanner.Err(); err != nil {
		return inserted, fmt.Errorf("failed to read file: %w", err)
	}
	return inserted, nil
}

func parseLine(text string) (*gen.InsertRequest, error) {
	i := strings.LastIndex(text, ",")
	if i < 0 {
		return nil, errors.New("expected name,youtubeLink")
	}
	return &gen.InsertRequest{
		Name:        strings.TrimSpace(text[:i]),
		YoutubeLink: strings.TrimSpace(text[i+1:]),
	}, nil
}
