package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/agencydesk/internal/error_values"
	"github.com/limbo/agencydesk/internal/repository"
	"github.com/limbo/agencydesk/pkg/entity"
	log "github.com/sirupsen/logrus"
)

type BlocksService struct {
	blocks  repository.BlocksRepositoryI
	stats   repository.StatsRepositoryI
	checker *AchievementService
}

func NewBlocksService(blocks repository.BlocksRepositoryI, stats repository.StatsRepositoryI, checker *AchievementService) *BlocksService {
	if blocks == nil || stats == nil || checker == nil {
		log.Fatal("provided nil dependency to blocks service")
	}
	return &BlocksService{
		blocks:  blocks,
		stats:   stats,
		checker: checker,
	}
}

func (bs *BlocksService) CreateBlock(ctx context.Context, uid uuid.UUID, req *CreateBlockRequest) (*entity.CapacityBlock, error) {
	if req == nil {
		return nil, errorvalues.ErrInvalidRequest
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	day, err := ParseDay(req.Date)
	if err != nil {
		return nil, err
	}
	id, err := bs.blocks.Create(ctx, &entity.CapacityBlock{
		UserID:   uid,
		Date:     day,
		Title:    req.Title,
		Hours:    req.Hours,
		IsShadow: req.IsShadow,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("blocks repository error: " + err.Error())
	}
	return bs.ownedBlock(ctx, uid, id)
}

func (bs *BlocksService) ListDay(ctx context.Context, uid uuid.UUID, date string) ([]*entity.CapacityBlock, error) {
	day, err := ParseDay(date)
	if err != nil {
		return nil, err
	}
	blocks, err := bs.blocks.ListByUserAndDate(ctx, uid, day)
	if err != nil {
		return nil, errors.New("blocks repository error: " + err.Error())
	}
	return blocks, nil
}

func (bs *BlocksService) SetCompleted(ctx context.Context, uid, blockID uuid.UUID, completed bool) (*BlockCompletion, error) {
	block, err := bs.ownedBlock(ctx, uid, blockID)
	if err != nil {
		return nil, err
	}
	changed, err := bs.blocks.SetCompleted(ctx, blockID, completed)
	if err != nil {
		return nil, errors.New("blocks repository error: " + err.Error())
	}
	block.Completed = completed
	result := &BlockCompletion{
		Block:     block,
		Changed:   changed,
		NewBadges: make([]*entity.Achievement, 0),
	}
	logger := log.WithFields(log.Fields{"uid": uid.String(), "block": blockID.String()})
	counted := false
	// Shadow blocks do not count toward completed totals.
	if changed && !block.IsShadow {
		delta := 1
		if !completed {
			delta = -1
		}
		total, err := bs.stats.AddCompletedBlocks(ctx, uid, delta)
		if err != nil {
			logger.WithError(err).Warn("completed blocks counter not updated")
		} else {
			result.TotalBlocksCompleted = total
			counted = true
		}
	}
	if !completed {
		if !counted {
			if stats, err := bs.stats.Get(ctx, uid); err == nil {
				result.TotalBlocksCompleted = stats.TotalBlocksCompleted
			}
		}
		return result, nil
	}
	day, err := bs.checker.checkDay(ctx, uid, block.Date)
	if err != nil {
		logger.WithError(err).Warn("day check failed, badges may be delayed")
		return result, nil
	}
	result.NewBadges = day.NewBadges
	result.TotalBlocksCompleted = day.Stats.TotalBlocksCompleted
	return result, nil
}

func (bs *BlocksService) DeleteBlock(ctx context.Context, uid, blockID uuid.UUID) error {
	block, err := bs.ownedBlock(ctx, uid, blockID)
	if err != nil {
		return err
	}
	err = bs.blocks.Delete(ctx, blockID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrBlockNotFound) {
			return err
		}
		return errors.New("blocks repository error: " + err.Error())
	}
	if block.Completed && !block.IsShadow {
		if _, err = bs.stats.AddCompletedBlocks(ctx, uid, -1); err != nil {
			log.WithFields(log.Fields{"uid": uid.String(), "block": blockID.String()}).
				WithError(err).Warn("completed blocks counter not updated")
		}
	}
	return nil
}

func (bs *BlocksService) ownedBlock(ctx context.Context, uid, blockID uuid.UUID) (*entity.CapacityBlock, error) {
	block, err := bs.blocks.GetByID(ctx, blockID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrBlockNotFound) {
			return nil, err
		}
		return nil, errors.New("blocks repository error: " + err.Error())
	}
	if block.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	return block, nil
}
