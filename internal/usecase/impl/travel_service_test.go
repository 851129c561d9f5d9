package impl

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"moim/internal/domain/entity"
	domainerrors "moim/internal/domain/errors"
	"moim/internal/domain/service"
	mockRepo "moim/internal/mocks/repository"
	"moim/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeResolver is a deterministic RouteResolver for tests: results and
// failures are keyed by coordinate pair. It is safe for concurrent use and
// counts invocations per pair.
type fakeResolver struct {
	mu       sync.Mutex
	results  map[string]*service.RouteResult
	failures map[string]bool
	calls    map[string]int
	delay    time.Duration
}

func newFakeResolver() *fakeResolver {
	return &fakeResolver{
		results:  make(map[string]*service.RouteResult),
		failures: make(map[string]bool),
		calls:    make(map[string]int),
	}
}

func pairKey(origin, dest service.Coordinate) string {
	return fmt.Sprintf("%v,%v->%v,%v", origin.Latitude, origin.Longitude, dest.Latitude, dest.Longitude)
}

func (f *fakeResolver) route(origin, dest service.Coordinate, durationMin float64) {
	f.results[pairKey(origin, dest)] = &service.RouteResult{
		DistanceKm:  durationMin / 2,
		DurationMin: durationMin,
	}
}

func (f *fakeResolver) fail(origin, dest service.Coordinate) {
	f.failures[pairKey(origin, dest)] = true
}

func (f *fakeResolver) Resolve(_ context.Context, origin, dest service.Coordinate) (*service.RouteResult, error) {
	if f.delay > 0 {
		time.Sleep(f.delay)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	key := pairKey(origin, dest)
	f.calls[key]++
	if f.failures[key] {
		return nil, service.ErrRouteUnavailable
	}
	if result, ok := f.results[key]; ok {
		copied := *result

		return &copied, nil
	}

	return nil, service.ErrRouteUnavailable
}

func (f *fakeResolver) callCount(origin, dest service.Coordinate) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.calls[pairKey(origin, dest)]
}

func newTestTravelService(resolver service.RouteResolver) *travelService {
	return &travelService{
		resolver: resolver,
		logger:   newDiscardLogger(),
	}
}

func coordOf(origin usecase.TravelOrigin) service.Coordinate {
	return service.Coordinate{Latitude: *origin.Latitude, Longitude: *origin.Longitude}
}

func coordOfDest(dest usecase.TravelDestination) service.Coordinate {
	return service.Coordinate{Latitude: dest.Latitude, Longitude: dest.Longitude}
}

func makeOrigin(lat, lng float64, name string) usecase.TravelOrigin {
	return usecase.TravelOrigin{
		ID:        uuid.New(),
		Name:      name,
		Address:   name + "의 집",
		Latitude:  &lat,
		Longitude: &lng,
	}
}

func TestTravelService_OrderPreservation(t *testing.T) {
	resolver := newFakeResolver()
	resolver.delay = time.Millisecond // let completions interleave
	srv := newTestTravelService(resolver)

	dest := usecase.TravelDestination{Name: "강남역", Latitude: 37.4979, Longitude: 127.0276}

	const originCount = 12
	origins := make([]usecase.TravelOrigin, 0, originCount)
	for i := 0; i < originCount; i++ {
		origin := makeOrigin(37.5+float64(i)*0.01, 126.9, fmt.Sprintf("친구%d", i))
		resolver.route(coordOf(origin), coordOfDest(dest), float64(10+i))
		origins = append(origins, origin)
	}

	summaries, err := srv.Rank(context.Background(), origins, []usecase.TravelDestination{dest})
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	require.Len(t, summaries[0].Items, originCount)

	for i, item := range summaries[0].Items {
		assert.Equal(t, origins[i].ID, item.OriginID, "item %d out of order", i)
		require.NotNil(t, item.DurationMin)
		assert.Equal(t, float64(10+i), *item.DurationMin)
	}
}

func TestTravelService_MissingCoordinateShortCircuit(t *testing.T) {
	resolver := newFakeResolver()
	srv := newTestTravelService(resolver)

	dest := usecase.TravelDestination{Name: "강남역", Latitude: 37.4979, Longitude: 127.0276}

	zero := 0.0
	ungeocoded := usecase.TravelOrigin{ID: uuid.New(), Name: "미등록", Address: "어딘가"}
	zeroCoord := usecase.TravelOrigin{ID: uuid.New(), Name: "영점", Address: "어딘가", Latitude: &zero, Longitude: &zero}
	routable := makeOrigin(37.55, 126.97, "철수")
	resolver.route(coordOf(routable), coordOfDest(dest), 25)

	summaries, err := srv.Rank(context.Background(),
		[]usecase.TravelOrigin{ungeocoded, zeroCoord, routable},
		[]usecase.TravelDestination{dest})
	require.NoError(t, err)

	items := summaries[0].Items
	assert.Equal(t, usecase.ErrorCodeMissingCoordinates, items[0].ErrorCode)
	assert.Equal(t, usecase.MessageMissingCoordinates, items[0].Error)
	assert.Equal(t, usecase.ErrorCodeMissingCoordinates, items[1].ErrorCode)
	assert.True(t, items[2].Succeeded())

	// Only the routable origin may reach the resolver.
	assert.Equal(t, 1, resolver.callCount(coordOf(routable), coordOfDest(dest)))
	assert.Len(t, resolver.calls, 1)
}

func TestTravelService_UngeocodedDestination(t *testing.T) {
	resolver := newFakeResolver()
	srv := newTestTravelService(resolver)

	origins := []usecase.TravelOrigin{makeOrigin(37.55, 126.97, "철수")}
	dest := usecase.TravelDestination{Name: "좌표 없는 장소"}

	summaries, err := srv.Rank(context.Background(), origins, []usecase.TravelDestination{dest})
	require.NoError(t, err)

	assert.Equal(t, usecase.ErrorCodeMissingCoordinates, summaries[0].Items[0].ErrorCode)
	assert.Empty(t, resolver.calls, "an ungeocoded destination must not trigger provider calls")
}

func TestTravelService_Aggregation(t *testing.T) {
	resolver := newFakeResolver()
	srv := newTestTravelService(resolver)

	dest := usecase.TravelDestination{Name: "강남역", Latitude: 37.4979, Longitude: 127.0276}

	durations := []float64{10, 20, 0, 30} // third origin fails
	origins := make([]usecase.TravelOrigin, 0, len(durations))
	for i, duration := range durations {
		origin := makeOrigin(37.5+float64(i)*0.01, 126.9, fmt.Sprintf("친구%d", i))
		if i == 2 {
			resolver.fail(coordOf(origin), coordOfDest(dest))
		} else {
			resolver.route(coordOf(origin), coordOfDest(dest), duration)
		}
		origins = append(origins, origin)
	}

	summaries, err := srv.Rank(context.Background(), origins, []usecase.TravelDestination{dest})
	require.NoError(t, err)

	summary := summaries[0]
	assert.Equal(t, 3, summary.SuccessCount)
	assert.InDelta(t, 60.0, summary.TotalMinutes, 1e-9)
	assert.InDelta(t, 20.0, summary.AverageMinutes, 1e-9)
	assert.Equal(t, usecase.ErrorCodeRoutingUnavailable, summary.Items[2].ErrorCode)
	assert.Equal(t, usecase.MessageRoutingUnavailable, summary.Items[2].Error)
}

func TestTravelService_AllFailedAggregation(t *testing.T) {
	resolver := newFakeResolver() // resolves nothing
	srv := newTestTravelService(resolver)

	dest := usecase.TravelDestination{Name: "강남역", Latitude: 37.4979, Longitude: 127.0276}
	origins := []usecase.TravelOrigin{
		makeOrigin(37.55, 126.97, "철수"),
		makeOrigin(37.56, 126.98, "영희"),
	}

	summaries, err := srv.Rank(context.Background(), origins, []usecase.TravelDestination{dest})
	require.NoError(t, err)

	summary := summaries[0]
	assert.Equal(t, 0, summary.SuccessCount)
	assert.Zero(t, summary.TotalMinutes)
	assert.Zero(t, summary.AverageMinutes)
	require.Len(t, summary.Items, 2)
	for _, item := range summary.Items {
		assert.Equal(t, usecase.ErrorCodeRoutingUnavailable, item.ErrorCode)
	}
}

func TestTravelService_RankingOrder(t *testing.T) {
	resolver := newFakeResolver()
	srv := newTestTravelService(resolver)

	origin := makeOrigin(37.55, 126.97, "철수")
	destA := usecase.TravelDestination{Name: "A", Latitude: 37.40, Longitude: 127.10}
	destB := usecase.TravelDestination{Name: "B", Latitude: 37.41, Longitude: 127.11}

	resolver.route(coordOf(origin), coordOfDest(destA), 15)
	resolver.route(coordOf(origin), coordOfDest(destB), 10)

	summaries, err := srv.Rank(context.Background(),
		[]usecase.TravelOrigin{origin},
		[]usecase.TravelDestination{destA, destB})
	require.NoError(t, err)

	require.Len(t, summaries, 2)
	assert.Equal(t, "B", summaries[0].Destination.Name)
	assert.Equal(t, "A", summaries[1].Destination.Name)
}

func TestTravelService_RankingTieKeepsInputOrder(t *testing.T) {
	resolver := newFakeResolver()
	srv := newTestTravelService(resolver)

	origin := makeOrigin(37.55, 126.97, "철수")
	first := usecase.TravelDestination{Name: "먼저", Latitude: 37.40, Longitude: 127.10}
	second := usecase.TravelDestination{Name: "나중", Latitude: 37.41, Longitude: 127.11}

	resolver.route(coordOf(origin), coordOfDest(first), 15)
	resolver.route(coordOf(origin), coordOfDest(second), 15)

	summaries, err := srv.Rank(context.Background(),
		[]usecase.TravelOrigin{origin},
		[]usecase.TravelDestination{first, second})
	require.NoError(t, err)

	assert.Equal(t, "먼저", summaries[0].Destination.Name)
	assert.Equal(t, "나중", summaries[1].Destination.Name)
}

func TestTravelService_ZeroSuccessSortsFirst(t *testing.T) {
	resolver := newFakeResolver()
	srv := newTestTravelService(resolver)

	origin := makeOrigin(37.55, 126.97, "철수")
	reachable := usecase.TravelDestination{Name: "갈 수 있는 곳", Latitude: 37.40, Longitude: 127.10}
	unreachable := usecase.TravelDestination{Name: "갈 수 없는 곳", Latitude: 37.41, Longitude: 127.11}

	resolver.route(coordOf(origin), coordOfDest(reachable), 5)
	resolver.fail(coordOf(origin), coordOfDest(unreachable))

	summaries, err := srv.Rank(context.Background(),
		[]usecase.TravelOrigin{origin},
		[]usecase.TravelDestination{reachable, unreachable})
	require.NoError(t, err)

	// An all-failed destination keeps average 0 and sorts first; SuccessCount
	// is how callers tell the two kinds of zero apart.
	assert.Equal(t, "갈 수 없는 곳", summaries[0].Destination.Name)
	assert.Zero(t, summaries[0].SuccessCount)
	assert.Equal(t, 1, summaries[1].SuccessCount)
}

func TestTravelService_DestinationIndependence(t *testing.T) {
	resolver := newFakeResolver()
	srv := newTestTravelService(resolver)

	origin1 := makeOrigin(37.55, 126.97, "철수")
	origin2 := makeOrigin(37.56, 126.98, "영희")
	dest1 := usecase.TravelDestination{Name: "D1", Latitude: 37.40, Longitude: 127.10}
	dest2 := usecase.TravelDestination{Name: "D2", Latitude: 37.41, Longitude: 127.11}

	// Only (origin1, dest1) fails; every other pair resolves.
	resolver.fail(coordOf(origin1), coordOfDest(dest1))
	resolver.route(coordOf(origin2), coordOfDest(dest1), 20)
	resolver.route(coordOf(origin1), coordOfDest(dest2), 30)
	resolver.route(coordOf(origin2), coordOfDest(dest2), 40)

	summaries, err := srv.Rank(context.Background(),
		[]usecase.TravelOrigin{origin1, origin2},
		[]usecase.TravelDestination{dest1, dest2})
	require.NoError(t, err)

	byName := map[string]*usecase.DestinationSummary{}
	for _, summary := range summaries {
		byName[summary.Destination.Name] = summary
	}

	d1 := byName["D1"]
	assert.Equal(t, usecase.ErrorCodeRoutingUnavailable, d1.Items[0].ErrorCode)
	assert.True(t, d1.Items[1].Succeeded())

	d2 := byName["D2"]
	assert.True(t, d2.Items[0].Succeeded(), "a failure for (o1,d1) must not leak into (o1,d2)")
	assert.True(t, d2.Items[1].Succeeded())
}

func TestTravelService_Idempotence(t *testing.T) {
	resolver := newFakeResolver()
	srv := newTestTravelService(resolver)

	dest := usecase.TravelDestination{Name: "강남역", Latitude: 37.4979, Longitude: 127.0276}
	origins := []usecase.TravelOrigin{
		makeOrigin(37.55, 126.97, "철수"),
		makeOrigin(37.56, 126.98, "영희"),
	}
	resolver.route(coordOf(origins[0]), coordOfDest(dest), 12)
	resolver.route(coordOf(origins[1]), coordOfDest(dest), 34)

	first, err := srv.Rank(context.Background(), origins, []usecase.TravelDestination{dest})
	require.NoError(t, err)
	second, err := srv.Rank(context.Background(), origins, []usecase.TravelDestination{dest})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestTravelService_EmptySelection(t *testing.T) {
	srv := newTestTravelService(newFakeResolver())

	_, err := srv.Rank(context.Background(), nil, []usecase.TravelDestination{{Latitude: 1, Longitude: 2}})
	assert.ErrorIs(t, err, domainerrors.ErrSelectionRequired)

	_, err = srv.Rank(context.Background(), []usecase.TravelOrigin{makeOrigin(1, 2, "x")}, nil)
	assert.ErrorIs(t, err, domainerrors.ErrSelectionRequired)
}

func TestTravelService_ComputeTravelTimes(t *testing.T) {
	resolver := newFakeResolver()
	friendRepo := mockRepo.NewMockFriendRepository(t)
	placeRepo := mockRepo.NewMockPlaceRepository(t)

	srv := &travelService{
		friendRepo: friendRepo,
		placeRepo:  placeRepo,
		resolver:   resolver,
		logger:     newDiscardLogger(),
	}

	ctx := context.Background()
	userID := uuid.New()

	lat1, lng1 := 37.55, 126.97
	friend := &entity.Friend{ID: uuid.New(), UserID: userID, Name: "철수", AddressRaw: "서울역", Latitude: &lat1, Longitude: &lng1}

	latA, lngA := 37.40, 127.10
	latB, lngB := 37.41, 127.11
	placeA := &entity.Place{ID: uuid.New(), UserID: userID, Name: "A", AddressRaw: "a", Latitude: &latA, Longitude: &lngA}
	placeB := &entity.Place{ID: uuid.New(), UserID: userID, Name: "B", AddressRaw: "b", Latitude: &latB, Longitude: &lngB}

	resolver.route(service.Coordinate{Latitude: lat1, Longitude: lng1}, service.Coordinate{Latitude: latA, Longitude: lngA}, 25)
	resolver.route(service.Coordinate{Latitude: lat1, Longitude: lng1}, service.Coordinate{Latitude: latB, Longitude: lngB}, 15)

	friendRepo.EXPECT().
		FindFriendsByIDs(ctx, userID, []uuid.UUID{friend.ID}).
		Return([]*entity.Friend{friend}, nil)
	placeRepo.EXPECT().
		FindPlacesByIDs(ctx, userID, []uuid.UUID{placeA.ID, placeB.ID}).
		Return([]*entity.Place{placeA, placeB}, nil)

	summaries, err := srv.ComputeTravelTimes(ctx, usecase.ComputeTravelTimesInput{
		UserID:    userID,
		FriendIDs: []uuid.UUID{friend.ID},
		PlaceIDs:  []uuid.UUID{placeA.ID, placeB.ID},
	})
	require.NoError(t, err)

	require.Len(t, summaries, 2)
	assert.Equal(t, placeB.ID, summaries[0].Destination.ID, "closer place ranks first")
	assert.Equal(t, placeA.ID, summaries[1].Destination.ID)
	assert.Equal(t, "서울역", summaries[0].Items[0].FromAddress)
}

func TestTravelService_ComputeTravelTimes_PlaceNotFound(t *testing.T) {
	friendRepo := mockRepo.NewMockFriendRepository(t)
	placeRepo := mockRepo.NewMockPlaceRepository(t)

	srv := &travelService{
		friendRepo: friendRepo,
		placeRepo:  placeRepo,
		resolver:   newFakeResolver(),
		logger:     newDiscardLogger(),
	}

	ctx := context.Background()
	userID := uuid.New()
	lat, lng := 37.55, 126.97
	friend := &entity.Friend{ID: uuid.New(), UserID: userID, Name: "철수", AddressRaw: "서울역", Latitude: &lat, Longitude: &lng}
	missingPlaceID := uuid.New()

	friendRepo.EXPECT().
		FindFriendsByIDs(ctx, userID, []uuid.UUID{friend.ID}).
		Return([]*entity.Friend{friend}, nil)
	placeRepo.EXPECT().
		FindPlacesByIDs(ctx, userID, []uuid.UUID{missingPlaceID}).
		Return([]*entity.Place{}, nil)

	_, err := srv.ComputeTravelTimes(ctx, usecase.ComputeTravelTimesInput{
		UserID:    userID,
		FriendIDs: []uuid.UUID{friend.ID},
		PlaceIDs:  []uuid.UUID{missingPlaceID},
	})
	assert.ErrorIs(t, err, domainerrors.ErrPlaceNotFound)
}

func TestTravelService_ComputeTravelTimes_EmptySelection(t *testing.T) {
	srv := newTestTravelService(newFakeResolver())

	_, err := srv.ComputeTravelTimes(context.Background(), usecase.ComputeTravelTimesInput{
		UserID: uuid.New(),
	})
	assert.ErrorIs(t, err, domainerrors.ErrSelectionRequired)
}
