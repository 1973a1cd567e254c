package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/base/log"
	"github.com/x-xyz/nftmarket/domain"
	"github.com/x-xyz/nftmarket/domain/event"
	"github.com/x-xyz/nftmarket/service/txn"
)

type EventUseCaseCfg struct {
	Repo      event.Repo
	Sequence  domain.SequenceRepo
	Publisher event.Publisher
	Now       func() time.Time
}

type impl struct {
	repo      event.Repo
	seq       domain.SequenceRepo
	publisher event.Publisher
	now       func() time.Time
}

func New(cfg *EventUseCaseCfg) event.UseCase {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &impl{
		repo:      cfg.Repo,
		seq:       cfg.Sequence,
		publisher: cfg.Publisher,
		now:       now,
	}
}

func (im *impl) Emit(c ctx.Ctx, e *event.Event) error {
	seq, err := im.seq.Next(c, domain.SequenceEvent)
	if err != nil {
		c.WithField("err", err).Error("seq.Next failed")
		return err
	}

	e.Id = uuid.NewString()
	e.Seq = seq
	e.CreatedAt = im.now()

	if err := im.repo.Insert(c, e); err != nil {
		c.WithFields(log.Fields{"err": err, "type": e.Type}).Error("repo.Insert failed")
		return err
	}

	if im.publisher != nil {
		txn.AfterCommit(c, func() {
			if err := im.publisher.Publish(c, e); err != nil {
				c.WithFields(log.Fields{"err": err, "type": e.Type, "seq": e.Seq}).Error("publisher.Publish failed")
			}
		})
	}
	return nil
}

func (im *impl) FindAll(c ctx.Ctx, opts ...event.FindAllOptionsFunc) ([]*event.Event, error) {
	return im.repo.FindAll(c, opts...)
}
