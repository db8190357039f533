package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/splitledger/splitledger/internal/service"
)

type transferResponse struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

type settlementResponse struct {
	GroupID   string             `json:"groupId"`
	GroupName string             `json:"groupName"`
	Transfers []transferResponse `json:"transfers"`
}

func toSettlementResponse(s *service.Settlement) settlementResponse {
	transfers := make([]transferResponse, len(s.Transfers))
	for i, t := range s.Transfers {
		transfers[i] = transferResponse{From: t.From, To: t.To, Amount: t.Cents.Amount()}
	}
	return settlementResponse{GroupID: s.GroupID, GroupName: s.GroupName, Transfers: transfers}
}

// handleSettlementSuggest returns the minimal transfer suggestion for one
// group (?groupId=) or for every group a user belongs to (?user=).
func (s *Server) handleSettlementSuggest(w http.ResponseWriter, r *http.Request) {
	groupID := r.URL.Query().Get("groupId")
	user := r.URL.Query().Get("user")

	switch {
	case groupID != "":
		settlement, err := s.settlements.ForGroup(r.Context(), groupID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toSettlementResponse(settlement))
	case user != "":
		settlements, err := s.settlements.ForUser(r.Context(), user)
		if err != nil {
			writeError(w, r, err)
			return
		}
		out := make([]settlementResponse, len(settlements))
		for i, settlement := range settlements {
			out[i] = toSettlementResponse(settlement)
		}
		writeJSON(w, http.StatusOK, out)
	default:
		writeError(w, r, fmt.Errorf("%w: provide groupId or user", service.ErrValidation))
	}
}

type dimensionResponse struct {
	Group  string  `json:"group,omitempty"`
	Payer  string  `json:"payer,omitempty"`
	Amount float64 `json:"total"`
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.analytics.Summary(r.Context(), r.URL.Query().Get("user"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	byGroup := make([]dimensionResponse, len(summary.ByGroup))
	for i, g := range summary.ByGroup {
		byGroup[i] = dimensionResponse{Group: g.Name, Amount: g.Total.Amount()}
	}

	type recentResponse struct {
		Title  string  `json:"title"`
		Amount float64 `json:"amount"`
		Date   string  `json:"date"`
		Group  string  `json:"group"`
	}
	recent := make([]recentResponse, len(summary.Recent))
	for i, e := range summary.Recent {
		recent[i] = recentResponse{
			Title:  e.Title,
			Amount: e.Amount.Abs().Amount(),
			Date:   e.Date.Format(dateLayout),
			Group:  e.Group,
		}
	}

	quick := map[string]any{
		"countRecent": summary.CountRecent,
		"avgRecent":   summary.AvgRecent.Amount(),
	}
	if summary.TopGroup != "" {
		quick["topGroup"] = summary.TopGroup
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"total":   summary.Total.Amount(),
		"byGroup": byGroup,
		"recent":  recent,
		"quick":   quick,
	})
}

func (s *Server) handleAnalyticsOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := s.analytics.Overview(r.Context(), r.URL.Query().Get("user"), time.Now())
	if err != nil {
		writeError(w, r, err)
		return
	}

	byGroup := make([]dimensionResponse, len(overview.ByGroup))
	for i, g := range overview.ByGroup {
		byGroup[i] = dimensionResponse{Group: g.Name, Amount: g.Total.Amount()}
	}
	byPayer := make([]dimensionResponse, len(overview.ByPayer))
	for i, p := range overview.ByPayer {
		byPayer[i] = dimensionResponse{Payer: p.Name, Amount: p.Total.Amount()}
	}

	type monthResponse struct {
		Month string  `json:"month"`
		Total float64 `json:"total"`
	}
	monthly := make([]monthResponse, len(overview.Monthly))
	for i, m := range overview.Monthly {
		monthly[i] = monthResponse{Month: m.Month, Total: m.Total.Amount()}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"totals":  map[string]float64{"totalSpend": overview.TotalSpend.Amount()},
		"byGroup": byGroup,
		"byPayer": byPayer,
		"monthly": monthly,
	})
}
