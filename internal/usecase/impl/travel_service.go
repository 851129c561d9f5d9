// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	domainerrors "moim/internal/domain/errors"
	"moim/internal/domain/repository"
	"moim/internal/domain/service"
	"moim/internal/errors"
	"moim/internal/usecase"

	"go.uber.org/fx"
)

// originWorkerLimit bounds the per-destination fan-out; expected origin counts
// are a handful, so the limit only matters for pathological requests.
const originWorkerLimit = 10

// travelService implements the TravelUsecase interface: concurrent pairwise
// route resolution, per-destination aggregation and ranking.
type travelService struct {
	friendRepo repository.FriendRepository
	placeRepo  repository.PlaceRepository
	resolver   service.RouteResolver
	logger     *slog.Logger
}

// TravelServiceParams holds dependencies for travelService, injected by Fx.
type TravelServiceParams struct {
	fx.In

	FriendRepo repository.FriendRepository
	PlaceRepo  repository.PlaceRepository
	Resolver   service.RouteResolver
	Logger     *slog.Logger
}

// NewTravelService is the constructor for travelService.
func NewTravelService(params TravelServiceParams) usecase.TravelUsecase {
	return &travelService{
		friendRepo: params.FriendRepo,
		placeRepo:  params.PlaceRepo,
		resolver:   params.Resolver,
		logger:     params.Logger,
	}
}

// ComputeTravelTimes loads the selected friends and places and ranks the
// places by average travel time across the friends.
func (srv *travelService) ComputeTravelTimes(ctx context.Context, input usecase.ComputeTravelTimesInput) ([]*usecase.DestinationSummary, error) {
	if len(input.FriendIDs) == 0 || len(input.PlaceIDs) == 0 {
		return nil, domainerrors.ErrSelectionRequired
	}

	friends, err := srv.friendRepo.FindFriendsByIDs(ctx, input.UserID, input.FriendIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load selected friends")
	}
	if len(friends) == 0 {
		return nil, domainerrors.ErrFriendNotFound
	}

	places, err := srv.placeRepo.FindPlacesByIDs(ctx, input.UserID, input.PlaceIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load selected places")
	}
	if len(places) != len(input.PlaceIDs) {
		return nil, domainerrors.ErrPlaceNotFound
	}

	origins := make([]usecase.TravelOrigin, 0, len(friends))
	for _, friend := range friends {
		origins = append(origins, usecase.TravelOrigin{
			ID:        friend.ID,
			Name:      friend.Name,
			Address:   friend.DisplayAddress(),
			Latitude:  friend.Latitude,
			Longitude: friend.Longitude,
		})
	}

	destinations := make([]usecase.TravelDestination, 0, len(places))
	for _, place := range places {
		dest := usecase.TravelDestination{
			ID:   place.ID,
			Name: place.Name,
		}
		// An ungeocoded place keeps zero coordinates and yields
		// missing-coordinate items for every origin.
		if place.Latitude != nil {
			dest.Latitude = *place.Latitude
		}
		if place.Longitude != nil {
			dest.Longitude = *place.Longitude
		}
		destinations = append(destinations, dest)
	}

	return srv.Rank(ctx, origins, destinations)
}

// Rank computes one summary per destination, concurrently and independently,
// then orders them ascending by average duration. Summaries with zero
// successful origins keep averageMinutes 0 and therefore sort first;
// SuccessCount is exposed so callers can tell the two zeros apart.
func (srv *travelService) Rank(ctx context.Context, origins []usecase.TravelOrigin, destinations []usecase.TravelDestination) ([]*usecase.DestinationSummary, error) {
	if len(origins) == 0 || len(destinations) == 0 {
		return nil, domainerrors.ErrSelectionRequired
	}

	summaries := make([]usecase.DestinationSummary, len(destinations))

	// Destinations share no state, so each pipeline runs on its own goroutine
	// writing into its own slot.
	var destGroup sync.WaitGroup
	for i := range destinations {
		destGroup.Add(1)
		go func(idx int) {
			defer destGroup.Done()
			summaries[idx] = srv.computeDestination(ctx, origins, destinations[idx])
		}(i)
	}
	destGroup.Wait()

	if ctx.Err() != nil {
		return nil, errors.Wrap(ctx.Err(), "travel time calculation canceled")
	}

	ranked := make([]*usecase.DestinationSummary, len(summaries))
	for i := range summaries {
		ranked[i] = &summaries[i]
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].AverageMinutes < ranked[j].AverageMinutes
	})

	return ranked, nil
}

type travelItemWithIndex struct {
	index int
	item  usecase.TravelItem
}

// computeDestination resolves a route for every origin concurrently and folds
// the items into a summary. Output item order always matches input origin
// order; one origin's failure never affects another's item.
func (srv *travelService) computeDestination(ctx context.Context, origins []usecase.TravelOrigin, dest usecase.TravelDestination) usecase.DestinationSummary {
	items := make([]usecase.TravelItem, len(origins))

	originCh := make(chan int, len(origins))
	resultCh := make(chan travelItemWithIndex, len(origins))

	workerCount := len(origins)
	if workerCount > originWorkerLimit {
		workerCount = originWorkerLimit
	}

	var workerGroup sync.WaitGroup
	for i := 0; i < workerCount; i++ {
		workerGroup.Add(1)
		go func() {
			defer workerGroup.Done()
			for idx := range originCh {
				if ctx.Err() != nil {
					return
				}

				resultCh <- travelItemWithIndex{
					index: idx,
					item:  srv.computeItem(ctx, origins[idx], dest),
				}
			}
		}()
	}

	for i := range origins {
		originCh <- i
	}
	close(originCh)

	go func() {
		workerGroup.Wait()
		close(resultCh)
	}()

	for res := range resultCh {
		items[res.index] = res.item
	}

	summary := usecase.DestinationSummary{
		Destination: dest,
		Items:       items,
	}
	for _, item := range items {
		if item.Succeeded() {
			summary.SuccessCount++
			summary.TotalMinutes += *item.DurationMin
		}
	}
	if summary.SuccessCount > 0 {
		summary.AverageMinutes = summary.TotalMinutes / float64(summary.SuccessCount)
	}

	return summary
}

// computeItem produces the outcome for one (origin, destination) pair.
func (srv *travelService) computeItem(ctx context.Context, origin usecase.TravelOrigin, dest usecase.TravelDestination) usecase.TravelItem {
	item := usecase.TravelItem{
		OriginID:    origin.ID,
		OriginName:  origin.Name,
		FromAddress: origin.Address,
	}

	// Ungeocoded input short-circuits before any provider call.
	if !origin.HasCoordinates() || !dest.HasCoordinates() {
		item.ErrorCode = usecase.ErrorCodeMissingCoordinates
		item.Error = usecase.MessageMissingCoordinates

		return item
	}

	result, err := srv.resolver.Resolve(ctx,
		service.Coordinate{Latitude: *origin.Latitude, Longitude: *origin.Longitude},
		service.Coordinate{Latitude: dest.Latitude, Longitude: dest.Longitude},
	)
	if err != nil {
		srv.logger.Debug("route resolution failed for pair",
			slog.String("originId", origin.ID.String()),
			slog.String("destination", dest.Name),
			slog.Any("error", err),
		)
		item.ErrorCode = usecase.ErrorCodeRoutingUnavailable
		item.Error = usecase.MessageRoutingUnavailable

		return item
	}

	distance := result.DistanceKm
	duration := result.DurationMin
	item.DistanceKm = &distance
	item.DurationMin = &duration
	item.Path = result.Path

	return item
}
