package audit

import (
	"fmt"
	"strings"
)

// Action is the kind of change recorded by a MutationEvent.
type Action string

const (
	ActionCreate      Action = "create"
	ActionUpdate      Action = "update"
	ActionDelete      Action = "delete"
	ActionAddMedia    Action = "add-media"
	ActionRemoveMedia Action = "remove-media"
)

// MutationEvent records one create, update or delete of a record.
type MutationEvent struct {
	Action       Action
	Entity       string
	EntityID     string
	UserID       string
	Related      string
	Success      bool
	ErrorMessage string
}

func (e MutationEvent) MessageID() string {
	return e.Entity
}

func (e MutationEvent) Message() string {
	subject := e.Entity
	if e.EntityID != "" {
		subject += " " + e.EntityID
	}
	if e.Related != "" {
		subject += " (" + e.Related + ")"
	}
	actor := e.UserID
	if actor == "" {
		actor = "anonymous"
	}
	if e.Success {
		return fmt.Sprintf("%s %s %s", actor, pastTense(e.Action), subject)
	}
	msg := fmt.Sprintf("%s failed to %s %s", actor, e.Action, subject)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e MutationEvent) Severity() Severity {
	if e.Success {
		return SeverityNotice
	}
	return SeverityWarning
}

func (e MutationEvent) Facility() int {
	return FacilityLocal0
}

func (e MutationEvent) StructuredData() map[string]map[string]string {
	sd := map[string]map[string]string{
		SDIDSubject: {
			"entity": e.Entity,
		},
		SDIDAction: {
			"operation": string(e.Action),
			"result":    result(e.Success),
		},
	}
	if e.EntityID != "" {
		sd[SDIDSubject]["id"] = e.EntityID
	}
	if e.Related != "" {
		sd[SDIDSubject]["related"] = e.Related
	}
	if e.UserID != "" {
		sd[SDIDActor] = map[string]string{"user": e.UserID}
	}
	return sd
}

// ReconcileEvent records the outcome of saving a rights holder form.
type ReconcileEvent struct {
	HolderID     string
	ArtworkID    string
	UserID       string
	Added        []string
	Removed      []string
	FailedStep   string
	ErrorMessage string
}

func (e ReconcileEvent) MessageID() string {
	return "rights-reconcile"
}

func (e ReconcileEvent) Message() string {
	if e.FailedStep == "" {
		return fmt.Sprintf("rights holder %s of artwork %s reconciled: %d added, %d removed",
			e.HolderID, e.ArtworkID, len(e.Added), len(e.Removed))
	}
	msg := fmt.Sprintf("rights holder %s of artwork %s partially reconciled: %d added, %d removed, failed at %s",
		e.HolderID, e.ArtworkID, len(e.Added), len(e.Removed), e.FailedStep)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e ReconcileEvent) Severity() Severity {
	if e.FailedStep == "" {
		return SeverityNotice
	}
	return SeverityError
}

func (e ReconcileEvent) Facility() int {
	return FacilityLocal0
}

func (e ReconcileEvent) StructuredData() map[string]map[string]string {
	sd := map[string]map[string]string{
		SDIDSubject: {
			"entity":     "rights-holder",
			"id":         e.HolderID,
			"artwork_id": e.ArtworkID,
		},
		SDIDAction: {
			"operation": "reconcile",
			"result":    result(e.FailedStep == ""),
		},
		SDIDChanges: {
			"added":   strings.Join(e.Added, ","),
			"removed": strings.Join(e.Removed, ","),
		},
	}
	if e.FailedStep != "" {
		sd[SDIDAction]["failed_step"] = e.FailedStep
	}
	if e.UserID != "" {
		sd[SDIDActor] = map[string]string{"user": e.UserID}
	}
	return sd
}

func result(ok bool) string {
	if ok {
		return "success"
	}
	return "failure"
}

func pastTense(a Action) string {
	switch a {
	case ActionCreate:
		return "created"
	case ActionUpdate:
		return "updated"
	case ActionDelete:
		return "deleted"
	case ActionAddMedia:
		return "added media to"
	case ActionRemoveMedia:
		return "removed media from"
	}
	return string(a)
}
