// Package audit records every change made through the services.
//
// Events are written as RFC5424 syslog lines to stdout. When
// AUDIT_DATABASE_URL is set they are also stored in the messages table, and
// any registered Sink (for example a RabbitMQ Publisher) receives a copy.
//
// # Usage
//
//	audit.Log(audit.MutationEvent{
//	    Action:   audit.ActionCreate,
//	    Entity:   "artworks",
//	    EntityID: id,
//	    Success:  true,
//	})
//
// Set ARTRIGHTS_AUDIT_ENABLED=false, or call SetEnabled(false), to turn
// auditing off.
package audit
