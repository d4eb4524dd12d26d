package network

import (
	"errors"
	"testing"
)

func TestDecodeAction_BareVariants(t *testing.T) {
	cases := []struct {
		raw  string
		want Action
	}{
		{`{"type":"startGame"}`, StartGame{}},
		{`{"type":"setQuestion"}`, SetQuestion{}},
		{`{"type":"dealInitialCards"}`, DealInitialCards{}},
		{`{"type":"dealCommunityCards"}`, DealCommunityCards{}},
		{`{"type":"revealAnswer"}`, RevealAnswer{}},
		{`{"type":"endRound"}`, EndRound{}},
		{`{"type":"newGame"}`, NewGame{}},
	}

	for _, tc := range cases {
		got, err := DecodeAction([]byte(tc.raw))
		if err != nil {
			t.Errorf("DecodeAction(%s) failed: %v", tc.raw, err)
			continue
		}
		if got != tc.want {
			t.Errorf("DecodeAction(%s) = %#v, want %#v", tc.raw, got, tc.want)
		}
	}
}

func TestDecodeAction_Bet(t *testing.T) {
	raw := `{"type":"bet","payload":{"playerId":"p1","amount":50}}`
	got, err := DecodeAction([]byte(raw))
	if err != nil {
		t.Fatalf("DecodeAction failed: %v", err)
	}
	bet, ok := got.(Bet)
	if !ok {
		t.Fatalf("Expected a Bet, got %#v", got)
	}
	if bet.PlayerID != "p1" || bet.Amount != 50 {
		t.Errorf("Unexpected bet payload: %+v", bet)
	}
}

func TestDecodeAction_Fold(t *testing.T) {
	raw := `{"type":"fold","payload":{"playerId":"p2"}}`
	got, err := DecodeAction([]byte(raw))
	if err != nil {
		t.Fatalf("DecodeAction failed: %v", err)
	}
	fold, ok := got.(Fold)
	if !ok {
		t.Fatalf("Expected a Fold, got %#v", got)
	}
	if fold.PlayerID != "p2" {
		t.Errorf("Unexpected fold payload: %+v", fold)
	}
}

func TestDecodeAction_Unknown(t *testing.T) {
	_, err := DecodeAction([]byte(`{"type":"launchMissiles"}`))
	if !errors.Is(err, ErrUnknownAction) {
		t.Errorf("Expected ErrUnknownAction, got: %v", err)
	}
}

func TestDecodeAction_Malformed(t *testing.T) {
	if _, err := DecodeAction([]byte(`{not json`)); err == nil {
		t.Error("Malformed JSON must fail to decode")
	}
	if _, err := DecodeAction([]byte(`{"type":"bet","payload":"nope"}`)); err == nil {
		t.Error("A bet with a non-object payload must fail to decode")
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	actions := []Action{
		StartGame{},
		Bet{PlayerID: "p9", Amount: 123},
		Fold{PlayerID: "p4"},
		EndRound{},
	}
	for _, a := range actions {
		data, err := EncodeAction(a)
		if err != nil {
			t.Fatalf("EncodeAction(%#v) failed: %v", a, err)
		}
		back, err := DecodeAction(data)
		if err != nil {
			t.Fatalf("DecodeAction round trip failed for %#v: %v", a, err)
		}
		if back != a {
			t.Errorf("Round trip mismatch: sent %#v, got %#v", a, back)
		}
	}
}

func TestHelloValidate(t *testing.T) {
	valid := Hello{Role: RolePlayer, Name: "Ada", RoomCode: "XYZ"}
	if err := valid.Validate(); err != nil {
		t.Errorf("Valid hello rejected: %v", err)
	}

	if err := (Hello{Role: "pirate", RoomCode: "XYZ"}).Validate(); !errors.Is(err, ErrInvalidHello) {
		t.Errorf("Unknown role must be rejected, got: %v", err)
	}
	if err := (Hello{Role: RoleHost}).Validate(); !errors.Is(err, ErrInvalidHello) {
		t.Errorf("Empty room code must be rejected, got: %v", err)
	}
}
