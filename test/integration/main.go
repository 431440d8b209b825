package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"slices"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/testing/protocmp"

	"singmeasong/gen"
	"singmeasong/internal/grpcutil"
	"singmeasong/pkg/discovery"
	"singmeasong/pkg/discovery/memory"
	recommendationtest "singmeasong/recommendation/pkg/testutil"
)

const (
	recommendationServiceName    = "recommendation"
	recommendationServiceAddress = "localhost:8082"
)

func main() {
	log.Println("Starting the integration test")

	ctx := context.Background()
	logger := zap.NewNop()
	registry := memory.NewRegistry(logger)

	log.Println("Setting up service handler and client")

	srv := startRecommendationService(ctx, registry, logger)
	defer srv.GracefulStop()

	conn, err := grpcutil.ServiceConnection(ctx, recommendationServiceName, registry, insecure.NewCredentials())
	if err != nil {
		panic(err)
	}
	defer conn.Close()
	client := gen.NewRecommendationServiceClient(conn)

	log.Println("Inserting test recommendations")
	songs := map[string]*gen.Recommendation{}
	for i, name := range []string{"Falamansa - Xote dos Milagres", "Chitãozinho e Xororó - Evidências", "Zé Ramalho - Chão de Giz"} {
		resp, err := client.Insert(ctx, &gen.InsertRequest{
			Name:        name,
			YoutubeLink: fmt.Sprintf("https://www.youtube.com/watch?v=song%d", i),
		})
		if err != nil {
			log.Fatalf("insert %q: %v", name, err)
		}
		if got := resp.Recommendation.Score; got != 0 {
			log.Fatalf("insert %q: score got %d, want 0", name, got)
		}
		songs[name] = resp.Recommendation
	}
	first := songs["Falamansa - Xote dos Milagres"]
	second := songs["Chitãozinho e Xororó - Evidências"]
	third := songs["Zé Ramalho - Chão de Giz"]

	log.Println("Inserting a duplicate name")
	_, err = client.Insert(ctx, &gen.InsertRequest{Name: first.Name, YoutubeLink: first.YoutubeLink})
	if got := status.Code(err); got != codes.AlreadyExists {
		log.Fatalf("duplicate insert: code got %v, want %v", got, codes.AlreadyExists)
	}

	log.Println("Inserting a malformed link")
	_, err = client.Insert(ctx, &gen.InsertRequest{Name: "Malformed", YoutubeLink: "https://vimeo.com/1"})
	if got := status.Code(err); got != codes.InvalidArgument {
		log.Fatalf("malformed insert: code got %v, want %v", got, codes.InvalidArgument)
	}

	log.Println("Retrieving recommendations most recent first")
	all, err := client.GetAll(ctx, &gen.GetAllRequest{})
	if err != nil {
		log.Fatalf("get all: %v", err)
	}
	want := []*gen.Recommendation{third, second, first}
	if diff := cmp.Diff(want, all.Recommendations, protocmp.Transform()); diff != "" {
		log.Fatalf("get all mismatch: %v", diff)
	}

	log.Println("Voting")
	for range 12 {
		if _, err := client.Upvote(ctx, &gen.VoteRequest{RecommendationId: second.Id}); err != nil {
			log.Fatalf("upvote: %v", err)
		}
	}
	if _, err := client.Upvote(ctx, &gen.VoteRequest{RecommendationId: first.Id}); err != nil {
		log.Fatalf("upvote: %v", err)
	}
	if _, err := client.Upvote(ctx, &gen.VoteRequest{RecommendationId: 9999}); status.Code(err) != codes.NotFound {
		log.Fatalf("upvote unknown: code got %v, want %v", status.Code(err), codes.NotFound)
	}

	log.Println("Retrieving the top recommendations")
	top, err := client.GetTop(ctx, &gen.GetTopRequest{Amount: 2})
	if err != nil {
		log.Fatalf("get top: %v", err)
	}
	gotIDs := make([]int64, 0, len(top.Recommendations))
	for _, r := range top.Recommendations {
		gotIDs = append(gotIDs, r.Id)
	}
	if diff := cmp.Diff([]int64{second.Id, first.Id}, gotIDs); diff != "" {
		log.Fatalf("get top mismatch: %v", diff)
	}
	if _, err := client.GetTop(ctx, &gen.GetTopRequest{Amount: 0}); status.Code(err) != codes.InvalidArgument {
		log.Fatalf("get top zero: code got %v, want %v", status.Code(err), codes.InvalidArgument)
	}

	log.Println("Retrieving a random recommendation")
	random, err := client.GetRandom(ctx, &gen.GetRandomRequest{})
	if err != nil {
		log.Fatalf("get random: %v", err)
	}
	if !slices.Contains([]int64{first.Id, second.Id, third.Id}, random.Recommendation.Id) {
		log.Fatalf("get random: unexpected id %d", random.Recommendation.Id)
	}

	log.Println("Downvoting until removal")
	for i := 1; i <= 5; i++ {
		resp, err := client.Downvote(ctx, &gen.VoteRequest{RecommendationId: third.Id})
		if err != nil {
			log.Fatalf("downvote: %v", err)
		}
		if got, want := resp.Recommendation.Score, int64(-i); got != want {
			log.Fatalf("downvote: score got %d, want %d", got, want)
		}
	}
	resp, err := client.Downvote(ctx, &gen.VoteRequest{RecommendationId: third.Id})
	if err != nil {
		log.Fatalf("downvote: %v", err)
	}
	if !resp.Removed || resp.Recommendation != nil {
		log.Fatalf("downvote: recommendation kept with score %d", resp.GetRecommendation().GetScore())
	}
	if _, err := client.Get(ctx, &gen.GetRequest{RecommendationId: third.Id}); status.Code(err) != codes.NotFound {
		log.Fatalf("get removed: code got %v, want %v", status.Code(err), codes.NotFound)
	}

	all, err = client.GetAll(ctx, &gen.GetAllRequest{})
	if err != nil {
		log.Fatalf("get all: %v", err)
	}
	if diff := cmp.Diff([]*gen.Recommendation{second, first}, all.Recommendations, protocmp.Transform(), protocmp.IgnoreFields(&gen.Recommendation{}, "score")); diff != "" {
		log.Fatalf("get all after removal mismatch: %v", diff)
	}

	log.Println("Integration test execution successful")
}

func startRecommendationService(ctx context.Context, registry discovery.Registry, logger *zap.Logger) *grpc.Server {
	log.Println("Starting recommendation service on " + recommendationServiceAddress)
	h := recommendationtest.NewTestRecommendationGRPCServer(logger)
	l, err := net.Listen("tcp", recommendationServiceAddress)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}
	srv := grpc.NewServer()
	gen.RegisterRecommendationServiceServer(srv, h)
	id := discovery.GenerateInstanceID(recommendationServiceName)
	if err := registry.Register(ctx, id, recommendationServiceName, recommendationServiceAddress); err != nil {
		panic(err)
	}
	go func() {
		defer func() {
			if err := registry.Deregister(ctx, id, recommendationServiceName); err != nil {
				log.Printf("Failed to deregister %s: %v", recommendationServiceName, err)
			}
		}()
		if err := srv.Serve(l); err != nil {
			panic(err)
		}
	}()
	go func() {
		for {
			if err := registry.ReportHealthyState(id, recommendationServiceName); err != nil {
				log.Printf("Failed to report healthy state: %v", err.Error())
			}
			time.Sleep(1 * time.Second)
		}
	}()
	return srv
}
