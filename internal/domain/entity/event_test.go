package entity

import "testing"

func TestEventStatusValid(t *testing.T) {
	valid := []EventStatus{StatusCancelado, StatusAgendado, StatusAtendido, StatusChegada, StatusAtendimento, StatusBloqueado}
	for _, s := range valid {
		if !s.Valid() {
			t.Errorf("expected %q to be valid", s)
		}
	}
	if EventStatus("finalizado").Valid() {
		t.Error("expected unknown status to be invalid")
	}
	if EventStatus("").Valid() {
		t.Error("expected empty status to be invalid")
	}
}

func TestEventStatusCanEdit(t *testing.T) {
	if !StatusAgendado.CanEdit() {
		t.Error("pending appointments must be editable")
	}
	for _, s := range []EventStatus{StatusChegada, StatusAtendimento, StatusAtendido, StatusCancelado, StatusBloqueado} {
		if s.CanEdit() {
			t.Errorf("status %q must not be editable", s)
		}
	}
}

func TestEventStatusCanReschedule(t *testing.T) {
	for _, s := range []EventStatus{StatusAgendado, StatusBloqueado} {
		if !s.CanReschedule() {
			t.Errorf("status %q must be reschedulable", s)
		}
	}
	for _, s := range []EventStatus{StatusChegada, StatusAtendimento, StatusAtendido, StatusCancelado} {
		if s.CanReschedule() {
			t.Errorf("status %q must not be reschedulable", s)
		}
	}
}

func TestEventStatusCanDelete(t *testing.T) {
	for _, s := range []EventStatus{StatusAgendado, StatusCancelado, StatusBloqueado} {
		if !s.CanDelete() {
			t.Errorf("status %q must be deletable", s)
		}
	}
	for _, s := range []EventStatus{StatusChegada, StatusAtendimento, StatusAtendido} {
		if s.CanDelete() {
			t.Errorf("status %q must not be deletable", s)
		}
	}
}

func TestWaitStatuses(t *testing.T) {
	if len(WaitStatuses) != 2 {
		t.Fatalf("expected 2 wait statuses, got %d", len(WaitStatuses))
	}
	seen := map[EventStatus]bool{}
	for _, s := range WaitStatuses {
		seen[s] = true
	}
	if !seen[StatusChegada] || !seen[StatusAtendimento] {
		t.Errorf("wait statuses must be chegada and atendimento, got %v", WaitStatuses)
	}
}
