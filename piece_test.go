package hookbook

import (
	"errors"
	"testing"
)

func TestAdvanceWorkStatus(t *testing.T) {
	tests := []struct {
		name    string
		from    WorkStatus
		to      WorkStatus
		wantErr bool
	}{
		{"in_progress to finished", WorkInProgress, WorkFinished, false},
		{"finished to ready", WorkFinished, WorkReady, false},
		{"skip straight to ready", WorkInProgress, WorkReady, false},
		{"backwards", WorkReady, WorkInProgress, true},
		{"finished back to in_progress", WorkFinished, WorkInProgress, true},
		{"same status", WorkFinished, WorkFinished, true},
		{"unknown status", WorkInProgress, WorkStatus("blocked"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Piece{ID: "PIECE-001", WorkStatus: tt.from}

			err := p.AdvanceWorkStatus(tt.to, testDay)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidTransition) {
					t.Fatalf("AdvanceWorkStatus() error = %v, want ErrInvalidTransition", err)
				}

				if p.WorkStatus != tt.from {
					t.Errorf("status changed to %q on rejected transition", p.WorkStatus)
				}

				return
			}

			if err != nil {
				t.Fatalf("AdvanceWorkStatus() error = %v", err)
			}

			if p.WorkStatus != tt.to {
				t.Errorf("WorkStatus = %q, want %q", p.WorkStatus, tt.to)
			}

			if !p.UpdatedAt.Equal(testDay) {
				t.Errorf("UpdatedAt not bumped")
			}
		})
	}
}

func TestSetDestination(t *testing.T) {
	tests := []struct {
		name    string
		from    Destination
		to      Destination
		wantErr bool
	}{
		{"list for sale then sell", DestForSale, DestSold, false},
		{"gift track", DestForGift, DestGifted, false},
		{"personal track", DestForSelf, DestInUse, false},
		{"change of plans before terminal", DestForSale, DestForGift, false},
		{"keep for self instead", DestForGift, DestForSelf, false},
		{"cannot sell a gift", DestForGift, DestSold, true},
		{"cannot gift a listing", DestForSale, DestGifted, true},
		{"sold is final", DestSold, DestForSale, true},
		{"gifted is final", DestGifted, DestForGift, true},
		{"in_use is final", DestInUse, DestForSale, true},
		{"unknown destination", DestForSale, Destination("lost"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Piece{ID: "PIECE-001", Destination: tt.from}

			err := p.SetDestination(tt.to, testDay)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidTransition) {
					t.Fatalf("SetDestination() error = %v, want ErrInvalidTransition", err)
				}

				return
			}

			if err != nil {
				t.Fatalf("SetDestination() error = %v", err)
			}

			if p.Destination != tt.to {
				t.Errorf("Destination = %q, want %q", p.Destination, tt.to)
			}
		})
	}
}

func TestMarkSold(t *testing.T) {
	p := Piece{ID: "PIECE-001", Destination: DestForSale}
	soldOn := day(2025, 4, 2)

	err := p.MarkSold(dec(t, "95"), soldOn, testDay)
	if err != nil {
		t.Fatalf("MarkSold() error = %v", err)
	}

	if p.Destination != DestSold {
		t.Errorf("Destination = %q, want sold", p.Destination)
	}

	if !p.SoldPrice.Valid || !p.SoldPrice.Decimal.Equal(dec(t, "95")) {
		t.Errorf("SoldPrice = %+v, want 95", p.SoldPrice)
	}

	if !p.SoldDate.Equal(soldOn) {
		t.Errorf("SoldDate = %v, want %v", p.SoldDate, soldOn)
	}
}

func TestMarkSoldRequiresListing(t *testing.T) {
	p := Piece{ID: "PIECE-001", Destination: DestForGift}

	err := p.MarkSold(dec(t, "95"), testDay, testDay)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("MarkSold() error = %v, want ErrInvalidTransition", err)
	}

	if p.SoldPrice.Valid {
		t.Error("SoldPrice set on rejected sale")
	}
}

func TestAddSession(t *testing.T) {
	p := Piece{ID: "PIECE-001", DateStarted: day(2025, 1, 6)}

	err := p.AddSession(WorkSession{Date: day(2025, 1, 7), Hours: 2.5}, testDay)
	if err != nil {
		t.Fatalf("AddSession() error = %v", err)
	}

	err = p.AddSession(WorkSession{Date: day(2025, 1, 9), Hours: 1}, testDay)
	if err != nil {
		t.Fatalf("AddSession() error = %v", err)
	}

	if got := p.HoursLogged(); got != 3.5 {
		t.Errorf("HoursLogged() = %v, want 3.5", got)
	}

	if !p.UpdatedAt.Equal(testDay) {
		t.Error("UpdatedAt not bumped")
	}
}

func TestAddSessionRejectsInvalid(t *testing.T) {
	p := Piece{ID: "PIECE-001", DateStarted: day(2025, 1, 6)}

	err := p.AddSession(WorkSession{Date: day(2025, 1, 7), Hours: -1}, testDay)
	if !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("AddSession() error = %v, want ErrInvalidSession", err)
	}

	err = p.AddSession(WorkSession{Date: day(2025, 1, 2), Hours: 1}, testDay)
	if !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("AddSession() error = %v, want ErrInvalidSession", err)
	}

	if len(p.WorkSessions) != 0 {
		t.Errorf("rejected sessions were appended: %d", len(p.WorkSessions))
	}
}

func TestAddYarn(t *testing.T) {
	p := Piece{ID: "PIECE-001"}

	err := p.AddYarn(YarnUsage{YarnID: "YARN-001", BallsUsed: 1.5}, testDay)
	if err != nil {
		t.Fatalf("AddYarn() error = %v", err)
	}

	err = p.AddYarn(YarnUsage{YarnID: "YARN-002", BallsUsed: 0}, testDay)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("AddYarn() error = %v, want ErrInvalidInput", err)
	}

	if len(p.YarnsUsed) != 1 {
		t.Errorf("YarnsUsed = %d entries, want 1", len(p.YarnsUsed))
	}
}

func TestHoursLoggedIsDerived(t *testing.T) {
	p := Piece{
		ID: "PIECE-001",
		WorkSessions: []WorkSession{
			{Date: day(2025, 1, 6), Hours: 3},
			{Date: day(2025, 1, 8), Hours: 5},
		},
	}

	if got := p.HoursLogged(); got != 8 {
		t.Errorf("HoursLogged() = %v, want 8", got)
	}

	p.WorkSessions = append(p.WorkSessions, WorkSession{Date: day(2025, 1, 9), Hours: 2})

	if got := p.HoursLogged(); got != 10 {
		t.Errorf("HoursLogged() = %v after append, want 10", got)
	}
}
