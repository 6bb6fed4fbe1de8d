package view

import (
	"sync"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/carlot/internal/navigation"
	"github.com/MrJamesThe3rd/carlot/internal/negotiation"
	"github.com/MrJamesThe3rd/carlot/internal/payment"
	"github.com/MrJamesThe3rd/carlot/internal/vehicle"
)

// Chats keeps one negotiation per conversation for the lifetime of the program.
type Chats struct {
	catalog   *vehicle.Catalog
	cfg       negotiation.Config
	scheduler negotiation.Scheduler
	processor payment.Processor

	mu   sync.Mutex
	open map[uuid.UUID]*negotiation.Conversation
}

func NewChats(c *vehicle.Catalog, cfg negotiation.Config, s negotiation.Scheduler, p payment.Processor) *Chats {
	return &Chats{
		catalog:   c,
		cfg:       cfg,
		scheduler: s,
		processor: p,
		open:      make(map[uuid.UUID]*negotiation.Conversation),
	}
}

func (c *Chats) Open(p navigation.ChatParams) *negotiation.Conversation {
	c.mu.Lock()
	defer c.mu.Unlock()

	if conv, ok := c.open[p.ConversationID]; ok {
		return conv
	}

	var opts []negotiation.Option
	if p.DealerName != "" {
		opts = append(opts, negotiation.WithDealerName(p.DealerName))
	}

	conv := negotiation.New(c.catalog.Get(p.VehicleID), c.cfg, c.scheduler, c.processor, opts...)
	c.open[p.ConversationID] = conv

	return conv
}
