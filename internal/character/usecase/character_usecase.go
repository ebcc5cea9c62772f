package usecase

import (
	"context"
	"net/http"

	"item_simulator/domain"
	"item_simulator/internal/service/logger"
	"item_simulator/internal/service/middleware"

	"go.uber.org/zap"
)

type CharacterUsecase interface {
	CreateCharacter(ctx context.Context, username string, req domain.CreateCharacterRequest) (*domain.CreateCharacterResponse, error)
	DeleteCharacter(ctx context.Context, username string, characterID int) error
	GetCharacterDetail(ctx context.Context, viewer string, characterID int) (*domain.CharacterDetailResponse, error)
	EarnMoney(ctx context.Context, username string, characterID int) (int, error)
}

// Flat grant credited by the earn-money endpoint.
const earnMoneyAmount = 100

const maxNameLen = 50

type characterUsecase struct {
	characterRepository domain.CharacterRepository
}

func NewCharacterUsecase(characterRepository domain.CharacterRepository) CharacterUsecase {
	return &characterUsecase{
		characterRepository: characterRepository,
	}
}

func (uc *characterUsecase) CreateCharacter(ctx context.Context, username string, req domain.CreateCharacterRequest) (*domain.CreateCharacterResponse, error) {
	requestID := middleware.GetRequestID(ctx)

	if req.Name == "" || len(req.Name) > maxNameLen {
		logger.AccessLogger.Warn("Invalid character name", zap.String("request_id", requestID))
		return nil, domain.NewError(http.StatusUnprocessableEntity, "invalid character name")
	}
	if req.Money < 0 {
		logger.AccessLogger.Warn("Negative starting money", zap.String("request_id", requestID))
		return nil, domain.NewError(http.StatusUnprocessableEntity, "money must not be negative")
	}

	character, stats, err := uc.characterRepository.CreateCharacter(ctx, username, req.Name, req.Stats, req.Money)
	if err != nil {
		return nil, err
	}

	return &domain.CreateCharacterResponse{
		Character: *character,
		Stats:     *stats,
	}, nil
}

func (uc *characterUsecase) DeleteCharacter(ctx context.Context, username string, characterID int) error {
	return uc.characterRepository.DeleteCharacter(ctx, username, characterID)
}

// GetCharacterDetail is public; money is included only when the viewer
// is the owner. viewer is empty for anonymous requests.
func (uc *characterUsecase) GetCharacterDetail(ctx context.Context, viewer string, characterID int) (*domain.CharacterDetailResponse, error) {
	character, stats, owner, err := uc.characterRepository.GetCharacterDetail(ctx, characterID)
	if err != nil {
		return nil, err
	}

	response := &domain.CharacterDetailResponse{
		Name:   character.Name,
		Power:  stats.Power,
		Health: stats.Health,
	}
	if viewer != "" && viewer == owner {
		money := character.Money
		response.Money = &money
	}
	return response, nil
}

func (uc *characterUsecase) EarnMoney(ctx context.Context, username string, characterID int) (int, error) {
	return uc.characterRepository.EarnMoney(ctx, username, characterID, earnMoneyAmount)
}
