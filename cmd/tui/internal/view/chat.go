package view

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/carlot/internal/inbox"
	"github.com/MrJamesThe3rd/carlot/internal/negotiation"
	"github.com/MrJamesThe3rd/carlot/internal/payment"
	"github.com/MrJamesThe3rd/carlot/internal/vehicle"
)

const paymentTimeout = 30 * time.Second

type chatState int

const (
	chatStateBrowse chatState = iota
	chatStateOffer
	chatStateCounter
)

// amountFields is shared with the offer forms so bindings survive model copies.
type amountFields struct {
	amount string
	note   string
}

type ChatModel struct {
	CommonModel
	conv  *negotiation.Conversation
	id    uuid.UUID
	inbox *inbox.Inbox

	state    chatState
	role     negotiation.Role
	viewport viewport.Model
	form     *huh.Form
	fields   *amountFields
	draft    negotiation.CounterDraft
	paying   bool
	status   string
}

func NewChatModel(conv *negotiation.Conversation, id uuid.UUID, in *inbox.Inbox) ChatModel {
	m := ChatModel{
		conv:     conv,
		id:       id,
		inbox:    in,
		role:     negotiation.RoleBuyer,
		viewport: viewport.New(80, 20),
		fields:   &amountFields{},
	}
	m.sync()

	return m
}

func (m ChatModel) Title() string {
	return fmt.Sprintf("Chat · %s (as %s)", m.conv.Vehicle().Title(), m.role)
}

func (m ChatModel) ShortHelp() string {
	if m.state != chatStateBrowse {
		return "Enter: submit | Esc: cancel"
	}

	parts := []string{"Esc: back", "r: switch role", "o: offer"}
	if m.role == negotiation.RoleBuyer {
		parts = append(parts, "b: buy at asking")
	}

	if p, ok := m.conv.LatestPending(); ok && p.Sender != m.role.Sender() {
		if p.Type == negotiation.TypePurchaseRequest {
			parts = append(parts, "a: confirm")
		} else {
			parts = append(parts, "a: accept", "d: decline", "c: counter")
		}
	}

	if _, ok := m.conv.PendingPayment(); ok {
		parts = append(parts, "p: pay")
	}

	return strings.Join(parts, " | ")
}

func (m ChatModel) Init() tea.Cmd {
	m.inbox.MarkRead(m.id)
	return nil
}

type paidMsg struct {
	result payment.Result
	err    error
}

func (m ChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.viewport.Width = max(msg.Width-4, 20)
		m.viewport.Height = max(msg.Height-10, 5)
		m.sync()

		return m, nil

	case TickMsg:
		m.sync()
		return m, nil

	case paidMsg:
		m.paying = false

		switch {
		case msg.err != nil:
			m.status = fmt.Sprintf("Payment failed: %v", msg.err)
		case msg.result.Status == payment.StatusCancelled:
			m.status = "Payment cancelled"
		default:
			m.status = "Payment complete, reference " + msg.result.Reference
		}

		m.sync()

		return m, nil
	}

	switch m.state {
	case chatStateOffer, chatStateCounter:
		return m.updateForm(msg)
	}

	return m.updateBrowse(msg)
}

func (m ChatModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)

		return m, cmd
	}

	switch keyMsg.String() {
	case "esc":
		m.conv.Close()
		return m, Back

	case "r":
		m.role = m.role.Other()
		m.status = fmt.Sprintf("Now acting as %s", m.role)

		return m, nil

	case "o":
		return m.openForm(chatStateOffer, "Make an offer", "")

	case "b":
		_, err := m.conv.RequestPurchase(m.role)
		m.report(err, "Purchase request sent")

		return m, nil

	case "a":
		p, ok := m.conv.LatestPending()
		if !ok {
			return m, nil
		}

		var err error
		if p.Type == negotiation.TypePurchaseRequest {
			_, err = m.conv.ConfirmPurchase(m.role, p.ID)
		} else {
			_, err = m.conv.AcceptOffer(m.role, p.ID)
		}

		m.report(err, "Accepted. Press p to pay.")

		return m, nil

	case "d":
		p, ok := m.conv.LatestPending()
		if !ok {
			return m, nil
		}

		m.report(m.conv.DeclineOffer(m.role, p.ID), "Offer declined")

		return m, nil

	case "c":
		p, ok := m.conv.LatestPending()
		if !ok {
			return m, nil
		}

		draft, err := m.conv.BeginCounter(m.role, p.ID)
		if err != nil {
			m.report(err, "")
			return m, nil
		}

		m.draft = draft
		title := fmt.Sprintf("Counter %s (round %d of %d)",
			vehicle.FormatFullPrice(draft.CurrentAmount), draft.Round+1, m.conv.MaxRounds())

		return m.openForm(chatStateCounter, title, vehicle.FormatFullPrice(draft.CurrentAmount))

	case "p":
		req, ok := m.conv.PendingPayment()
		if !ok || m.paying {
			return m, nil
		}

		m.paying = true
		m.status = "Processing payment..."

		return m, m.payCmd(req)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)

	return m, cmd
}

func (m ChatModel) openForm(state chatState, title, placeholder string) (tea.Model, tea.Cmd) {
	m.fields = &amountFields{}

	fields := []huh.Field{
		huh.NewInput().
			Key("amount").
			Title(title).
			Placeholder(placeholder).
			Value(&m.fields.amount).
			Validate(func(s string) error {
				_, err := negotiation.ParseOfferAmount(s)
				return err
			}),
	}

	if state == chatStateOffer {
		fields = append(fields, huh.NewInput().
			Key("note").
			Title("Message (optional)").
			CharLimit(280).
			Value(&m.fields.note))
	}

	m.form = huh.NewForm(huh.NewGroup(fields...)).WithWidth(50).WithShowHelp(false)
	m.state = state
	m.status = ""

	return m, m.form.Init()
}

func (m ChatModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = chatStateBrowse
		m.form = nil

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	var err error

	switch m.state {
	case chatStateOffer:
		_, err = m.conv.SubmitOffer(m.role, m.fields.amount, m.fields.note)
		m.report(err, "Offer sent")
	case chatStateCounter:
		_, err = m.conv.SubmitCounter(m.role, m.draft.MessageID, m.fields.amount)
		m.report(err, "Counter offer sent")
	}

	m.state = chatStateBrowse
	m.form = nil

	return m, nil
}

func (m ChatModel) payCmd(req payment.Request) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), paymentTimeout)
		defer cancel()

		res, err := m.conv.Pay(ctx, req)

		return paidMsg{result: res, err: err}
	}
}

// report sets the status line from an action result and refreshes the log.
func (m *ChatModel) report(err error, done string) {
	switch {
	case errors.Is(err, negotiation.ErrRoundLimit):
		m.status = "Negotiation limit reached"
	case errors.Is(err, negotiation.ErrOwnOffer):
		m.status = "Waiting for the other side to respond"
	case err != nil:
		m.status = fmt.Sprintf("Error: %v", err)
	default:
		m.status = done
	}

	m.sync()
}

// sync re-renders the log and mirrors the latest activity into the inbox row.
func (m *ChatModel) sync() {
	msgs := m.conv.Messages()

	m.viewport.SetContent(m.renderMessages(msgs))
	m.viewport.GotoBottom()

	if len(msgs) < 2 {
		return
	}

	last := msgs[len(msgs)-1]
	m.inbox.Touch(m.id, last.Content, dealStatus(msgs), last.Timestamp)
}

func dealStatus(msgs []negotiation.Message) inbox.DealStatus {
	st := inbox.DealActive

	for _, msg := range msgs {
		switch msg.Type {
		case negotiation.TypeOffer, negotiation.TypeCounterOffer, negotiation.TypePurchaseRequest:
			if st == inbox.DealActive {
				st = inbox.DealNegotiating
			}
		case negotiation.TypeOfferAccepted, negotiation.TypePurchaseConfirmed:
			st = inbox.DealAccepted
		case negotiation.TypePaymentComplete:
			return inbox.DealCompleted
		}
	}

	return st
}

var (
	cardStyle = lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63"))
	buyerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	dealerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	systemStyle = lipgloss.NewStyle().Faint(true).Italic(true)
)

func senderLabel(s negotiation.Sender) string {
	switch s {
	case negotiation.SenderBuyer:
		return buyerStyle.Render("Buyer")
	case negotiation.SenderDealer:
		return dealerStyle.Render("Dealer")
	}

	return systemStyle.Render("CarLot")
}

func (m ChatModel) renderMessages(msgs []negotiation.Message) string {
	var b strings.Builder

	for _, msg := range msgs {
		b.WriteString(m.renderMessage(msg))
		b.WriteString("\n\n")
	}

	return b.String()
}

func (m ChatModel) renderMessage(msg negotiation.Message) string {
	when := faint.Render(FormatAgo(msg.Timestamp))

	switch msg.Type {
	case negotiation.TypeVehicleCard:
		return cardStyle.Render(fmt.Sprintf("%s\nAsking %s", heading.Render(msg.Content), accent.Render(vehicle.FormatFullPrice(msg.Data.Amount))))

	case negotiation.TypeSystem:
		return systemStyle.Render("· " + msg.Content)

	case negotiation.TypeOffer, negotiation.TypeCounterOffer, negotiation.TypePurchaseRequest:
		d := msg.Data

		label := "Offer"
		switch msg.Type {
		case negotiation.TypeCounterOffer:
			label = "Counter offer"
		case negotiation.TypePurchaseRequest:
			label = "Purchase request"
		}

		lines := []string{
			fmt.Sprintf("%s %s  %s", senderLabel(msg.Sender), heading.Render(label), when),
			fmt.Sprintf("%s  %s", accent.Render(vehicle.FormatFullPrice(d.Amount)), faint.Render("asking "+vehicle.FormatFullPrice(d.OriginalPrice))),
		}

		if d.NegotiationRound > 0 {
			lines = append(lines, faint.Render(fmt.Sprintf("Round %d of %d", d.NegotiationRound, m.conv.MaxRounds())))
		}

		status := string(d.Status)
		if msg.Pending() && msg.Sender != m.role.Sender() {
			status = activeStyle("awaiting your response")
		}

		lines = append(lines, "["+status+"]")

		if msg.Content != "" && msg.Type == negotiation.TypeOffer {
			lines = append(lines, msg.Content)
		}

		return cardStyle.Render(strings.Join(lines, "\n"))

	case negotiation.TypeOfferAccepted, negotiation.TypePurchaseConfirmed, negotiation.TypePaymentComplete:
		return fmt.Sprintf("%s  %s\n%s", senderLabel(msg.Sender), when, lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Render("✓ "+msg.Content))

	case negotiation.TypeOfferDeclined:
		return fmt.Sprintf("%s  %s\n%s", senderLabel(msg.Sender), when, errStyle.Render("✗ "+msg.Content))
	}

	return fmt.Sprintf("%s  %s\n%s", senderLabel(msg.Sender), when, msg.Content)
}

func (m ChatModel) View() string {
	content := m.viewport.View()

	if m.state != chatStateBrowse && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(54).
			Render(m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = faint.Render(m.status) + "\n" + content
	}

	return padded.Render(content)
}
