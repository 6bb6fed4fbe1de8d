package negotiation

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/MrJamesThe3rd/carlot/internal/payment"
	"github.com/MrJamesThe3rd/carlot/internal/vehicle"
)

const declineText = "Thanks for your offer, but we're unable to accept it at this time."

type Config struct {
	MaxRounds     int
	ResponseDelay time.Duration
	FollowUpDelay time.Duration
}

func DefaultConfig() Config {
	return Config{
		MaxRounds:     2,
		ResponseDelay: 1500 * time.Millisecond,
		FollowUpDelay: 2 * time.Second,
	}
}

type Option func(*Conversation)

// WithClock replaces time.Now for message timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Conversation) { c.now = now }
}

// WithDealerName sets the name used in counterparty notices.
func WithDealerName(name string) Option {
	return func(c *Conversation) { c.dealerName = name }
}

// Conversation is the message log of one buyer/dealer chat about a vehicle, together with
// the offer state machine that acts on it. Messages are append-only; only Data.Status of
// offer-like messages changes after creation.
type Conversation struct {
	mu sync.Mutex

	cfg        Config
	vehicle    vehicle.Vehicle
	dealerName string
	scheduler  Scheduler
	processor  payment.Processor
	now        func() time.Time
	entropy    *ulid.MonotonicEntropy

	messages []Message
	index    map[string]int
	tasks    map[uint64]Task
	taskSeq  uint64
	payment  *payment.Request
	charging bool
}

// New opens a conversation about v, seeded with a vehicle card message.
func New(v vehicle.Vehicle, cfg Config, s Scheduler, p payment.Processor, opts ...Option) *Conversation {
	if cfg.MaxRounds < 1 {
		cfg.MaxRounds = DefaultConfig().MaxRounds
	}

	c := &Conversation{
		cfg:        cfg,
		vehicle:    v,
		dealerName: v.Seller.Dealership,
		scheduler:  s,
		processor:  p,
		now:        time.Now,
		entropy:    ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
		index:      make(map[string]int),
		tasks:      make(map[uint64]Task),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.dealerName == "" {
		c.dealerName = "The dealer"
	}

	c.append(Message{
		Type:    TypeVehicleCard,
		Content: v.Title(),
		Sender:  SenderSystem,
		Data: &Data{
			Amount:       v.Ask(),
			VehicleID:    v.ID,
			VehicleTitle: v.Title(),
		},
	})

	return c
}

func (c *Conversation) Vehicle() vehicle.Vehicle { return c.vehicle }

func (c *Conversation) MaxRounds() int { return c.cfg.MaxRounds }

// Messages returns a snapshot of the log in order.
func (c *Conversation) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Message, len(c.messages))
	for i, m := range c.messages {
		out[i] = m.clone()
	}

	return out
}

func (c *Conversation) Message(id string) (Message, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.index[id]
	if !ok {
		return Message{}, false
	}

	return c.messages[i].clone(), true
}

// LatestPending returns the most recent offer-like message still awaiting a response.
func (c *Conversation) LatestPending() (Message, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := len(c.messages) - 1; i >= 0; i-- {
		if c.messages[i].Pending() {
			return c.messages[i].clone(), true
		}
	}

	return Message{}, false
}

// Round is the highest negotiation round reached so far.
func (c *Conversation) Round() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	round := 0
	for _, m := range c.messages {
		if m.Data != nil && m.Data.NegotiationRound > round {
			round = m.Data.NegotiationRound
		}
	}

	return round
}

// PendingPayment returns the agreed payment awaiting completion, if any.
func (c *Conversation) PendingPayment() (payment.Request, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.payment == nil {
		return payment.Request{}, false
	}

	return *c.payment, true
}

// Close cancels every follow-up still scheduled by this conversation.
func (c *Conversation) Close() {
	c.mu.Lock()
	tasks := c.tasks
	c.tasks = make(map[uint64]Task)
	c.mu.Unlock()

	for _, t := range tasks {
		t.Cancel()
	}
}

// SubmitOffer posts a new offer as role. rawAmount is user input such as "36,000".
func (c *Conversation) SubmitOffer(role Role, rawAmount, note string) (Message, error) {
	if !role.Valid() {
		return Message{}, ErrInvalidRole
	}

	amount, err := ParseOfferAmount(rawAmount)
	if err != nil {
		return Message{}, err
	}

	content := note
	if content == "" {
		content = "Offer: " + vehicle.FormatFullPrice(amount)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	m := c.append(Message{
		Type:    TypeOffer,
		Content: content,
		Sender:  role.Sender(),
		Data: &Data{
			Status:           StatusPending,
			Amount:           amount,
			OriginalPrice:    c.vehicle.Ask(),
			NegotiationRound: 1,
		},
	})

	c.scheduleReview(role)

	return m, nil
}

// RequestPurchase asks to buy at the asking price. Only the buyer can request a purchase.
func (c *Conversation) RequestPurchase(role Role) (Message, error) {
	if !role.Valid() {
		return Message{}, ErrInvalidRole
	}

	if role != RoleBuyer {
		return Message{}, ErrRoleNotAllowed
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	ask := c.vehicle.Ask()

	m := c.append(Message{
		Type:    TypePurchaseRequest,
		Content: fmt.Sprintf("I'd like to buy this vehicle at the asking price of %s.", vehicle.FormatFullPrice(ask)),
		Sender:  SenderBuyer,
		Data: &Data{
			Status:        StatusPending,
			Amount:        ask,
			OriginalPrice: ask,
		},
	})

	c.scheduleReview(role)

	return m, nil
}

// AcceptOffer accepts a pending offer or counter offer and returns the payment to collect.
func (c *Conversation) AcceptOffer(role Role, messageID string) (payment.Request, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	target, err := c.respondable(role, messageID, TypeOffer, TypeCounterOffer)
	if err != nil {
		return payment.Request{}, err
	}

	target.Data.Status = StatusAccepted
	amount := target.Data.Amount

	c.append(Message{
		Type:    TypeOfferAccepted,
		Content: fmt.Sprintf("Offer of %s accepted.", vehicle.FormatFullPrice(amount)),
		Sender:  role.Sender(),
		Data:    &Data{Status: StatusAccepted, Amount: amount, OriginalPrice: target.Data.OriginalPrice},
	})

	return c.startPayment(role, amount), nil
}

// DeclineOffer declines a pending offer, counter offer or purchase request.
func (c *Conversation) DeclineOffer(role Role, messageID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	target, err := c.respondable(role, messageID, TypeOffer, TypeCounterOffer, TypePurchaseRequest)
	if err != nil {
		return err
	}

	target.Data.Status = StatusDeclined

	c.append(Message{
		Type:    TypeOfferDeclined,
		Content: declineText,
		Sender:  role.Sender(),
		Data:    &Data{Status: StatusDeclined, Amount: target.Data.Amount},
	})

	return nil
}

// CounterDraft describes the offer a counter will replace.
type CounterDraft struct {
	MessageID     string
	CurrentAmount int64
	Round         int
}

// BeginCounter checks that messageID can still be countered. When the round limit has been
// reached it posts a system notice, leaves every message untouched and returns ErrRoundLimit.
func (c *Conversation) BeginCounter(role Role, messageID string) (CounterDraft, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	target, err := c.counterable(role, messageID)
	if err != nil {
		return CounterDraft{}, err
	}

	return CounterDraft{
		MessageID:     target.ID,
		CurrentAmount: target.Data.Amount,
		Round:         target.Data.NegotiationRound,
	}, nil
}

// SubmitCounter replaces messageID with a counter offer of rawAmount from role.
func (c *Conversation) SubmitCounter(role Role, messageID, rawAmount string) (Message, error) {
	amount, err := ParseOfferAmount(rawAmount)
	if err != nil {
		return Message{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	target, err := c.counterable(role, messageID)
	if err != nil {
		return Message{}, err
	}

	target.Data.Status = StatusCountered

	m := c.append(Message{
		Type:    TypeCounterOffer,
		Content: "Counter offer: " + vehicle.FormatFullPrice(amount),
		Sender:  role.Sender(),
		Data: &Data{
			Status:           StatusPending,
			Amount:           amount,
			OriginalPrice:    target.Data.OriginalPrice,
			NegotiationRound: target.Data.NegotiationRound + 1,
		},
	})

	c.scheduleReview(role)

	return m, nil
}

// ConfirmPurchase accepts a pending purchase request and returns the payment to collect.
func (c *Conversation) ConfirmPurchase(role Role, messageID string) (payment.Request, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	target, err := c.respondable(role, messageID, TypePurchaseRequest)
	if err != nil {
		return payment.Request{}, err
	}

	target.Data.Status = StatusAccepted
	amount := target.Data.Amount

	c.append(Message{
		Type:    TypePurchaseConfirmed,
		Content: fmt.Sprintf("Purchase confirmed at %s.", vehicle.FormatFullPrice(amount)),
		Sender:  role.Sender(),
		Data:    &Data{Status: StatusAccepted, Amount: amount, OriginalPrice: target.Data.OriginalPrice},
	})

	return c.startPayment(role, amount), nil
}

// Pay charges the agreed payment. req must be the one returned by AcceptOffer or
// ConfirmPurchase; only one charge can be in flight. A successful charge completes the
// payment; a cancelled or failed one leaves it pending so it can be retried.
func (c *Conversation) Pay(ctx context.Context, req payment.Request) (payment.Result, error) {
	c.mu.Lock()

	switch {
	case c.payment == nil:
		c.mu.Unlock()
		return payment.Result{}, ErrNoPendingPayment
	case *c.payment != req:
		c.mu.Unlock()
		return payment.Result{}, ErrPaymentMismatch
	case c.charging:
		c.mu.Unlock()
		return payment.Result{}, ErrPaymentInFlight
	}

	c.charging = true
	c.mu.Unlock()

	res, err := c.processor.Charge(ctx, req)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.charging = false

	if err != nil {
		c.appendNotice(fmt.Sprintf("Payment of %s failed. Please try again.", vehicle.FormatFullPrice(req.Amount)))
		return payment.Result{}, fmt.Errorf("charging payment: %w", err)
	}

	if res.Status == payment.StatusCancelled {
		c.appendNotice("Payment cancelled. You can complete it at any time.")
		return res, nil
	}

	c.complete(req.Amount, res.Reference)

	return res, nil
}

// CompletePayment records a finished payment and schedules the contact-exchange follow-ups.
func (c *Conversation) CompletePayment(role Role, amount int64, reference string) (Message, error) {
	if !role.Valid() {
		return Message{}, ErrInvalidRole
	}

	if amount <= 0 {
		return Message{}, ErrInvalidAmount
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.payment == nil {
		return Message{}, ErrNoPendingPayment
	}

	if c.charging {
		return Message{}, ErrPaymentInFlight
	}

	return c.complete(amount, reference), nil
}

// complete clears the pending payment, records it and schedules the contact-exchange
// follow-ups. The caller must hold c.mu.
func (c *Conversation) complete(amount int64, reference string) Message {
	c.payment = nil

	content := fmt.Sprintf("Payment of %s received.", vehicle.FormatFullPrice(amount))
	if reference != "" {
		content += " Reference " + reference + "."
	}

	m := c.append(Message{
		Type:    TypePaymentComplete,
		Content: content,
		Sender:  SenderSystem,
		Data:    &Data{Status: StatusAccepted, Amount: amount, Reference: reference},
	})

	seller := c.vehicle.Seller
	followUps := []Message{
		{
			Type:    TypeText,
			Sender:  SenderDealer,
			Content: fmt.Sprintf("Thanks! I'll call within 24 hours to arrange inspection and pickup. My direct line is %s.", orDefault(seller.Phone, "on our website")),
		},
		{
			Type:    TypeText,
			Sender:  SenderBuyer,
			Content: "Great, I've sent my contact details through. Looking forward to it.",
		},
		{
			Type:    TypeSystem,
			Sender:  SenderSystem,
			Content: "A confirmation email has been sent to both parties.",
		},
	}

	for i, f := range followUps {
		c.schedule(time.Duration(i+1)*c.cfg.FollowUpDelay, f)
	}

	return m
}

// respondable finds messageID and checks role may accept, decline or confirm it.
// The caller must hold c.mu.
func (c *Conversation) respondable(role Role, messageID string, types ...Type) (*Message, error) {
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	i, ok := c.index[messageID]
	if !ok {
		return nil, ErrMessageNotFound
	}

	m := &c.messages[i]

	allowed := false
	for _, t := range types {
		if m.Type == t {
			allowed = true
			break
		}
	}

	if !allowed || m.Data == nil {
		return nil, ErrNotActionable
	}

	if m.Data.Status != StatusPending {
		return nil, ErrAlreadyResolved
	}

	if m.Sender == role.Sender() {
		return nil, ErrOwnOffer
	}

	return m, nil
}

// counterable is respondable for counter offers plus the round limit check.
// The caller must hold c.mu.
func (c *Conversation) counterable(role Role, messageID string) (*Message, error) {
	target, err := c.respondable(role, messageID, TypeOffer, TypeCounterOffer)
	if err != nil {
		return nil, err
	}

	if target.Data.NegotiationRound >= c.cfg.MaxRounds {
		c.append(Message{
			Type:    TypeSystem,
			Sender:  SenderSystem,
			Content: fmt.Sprintf("Maximum of %d negotiation rounds reached. Please accept or decline the current offer.", c.cfg.MaxRounds),
		})

		return nil, ErrRoundLimit
	}

	return target, nil
}

// startPayment records the agreed payment. The caller must hold c.mu.
func (c *Conversation) startPayment(role Role, amount int64) payment.Request {
	req := payment.Request{
		Amount:       amount,
		VehicleID:    c.vehicle.ID,
		VehicleTitle: c.vehicle.Title(),
		Role:         string(role),
	}
	c.payment = &req

	return req
}

// scheduleReview posts a delayed notice that the other side is looking at role's proposal.
// The caller must hold c.mu.
func (c *Conversation) scheduleReview(role Role) {
	who := c.dealerName
	if role == RoleDealer {
		who = "The buyer"
	}

	c.schedule(c.cfg.ResponseDelay, Message{
		Type:    TypeSystem,
		Sender:  SenderSystem,
		Content: who + " is reviewing the offer.",
	})
}

// schedule appends m after delay. The caller must hold c.mu.
func (c *Conversation) schedule(delay time.Duration, m Message) {
	if c.scheduler == nil {
		return
	}

	c.taskSeq++
	id := c.taskSeq

	// c.mu is held until the handle is stored, so the callback cannot run first.
	c.tasks[id] = c.scheduler.Schedule(delay, func() {
		c.mu.Lock()
		defer c.mu.Unlock()

		delete(c.tasks, id)
		c.append(m)
	})
}

// appendNotice adds a system message. The caller must hold c.mu.
func (c *Conversation) appendNotice(content string) {
	c.append(Message{Type: TypeSystem, Sender: SenderSystem, Content: content})
}

// append stamps m with an id and timestamp and adds it to the log. The caller must hold c.mu
// (New calls it before the conversation is shared).
func (c *Conversation) append(m Message) Message {
	now := c.now()

	m.ID = ulid.MustNew(ulid.Timestamp(now), c.entropy).String()
	m.Timestamp = now

	c.index[m.ID] = len(c.messages)
	c.messages = append(c.messages, m)

	return m.clone()
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}

	return s
}
