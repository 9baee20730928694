package view

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/selamsoft/selam-web/internal/notify"
	"github.com/selamsoft/selam-web/internal/types"
)

// ContactSink receives contact messages. A nil sink means messages are
// acknowledged without being transmitted anywhere.
type ContactSink interface {
	SaveContactMessage(ctx context.Context, msg *types.ContactMessage) (uuid.UUID, error)
}

// Notices shown around the contact form.
var (
	NoticeMessageSent = notify.Success("Message Sent!",
		"Thank you for your message. We'll get back to you soon.")
	NoticeMessageFailed = notify.Failure("Message Not Sent",
		"We couldn't save your message. Please try again or email us directly.")
	NoticeContactInvalid = notify.Failure("Check your message",
		"Some fields need your attention.")
)

// SubmitContact validates a contact message and hands it to sink.
func SubmitContact(ctx context.Context, form *FormState, sink ContactSink) Outcome {
	values := form.Values()
	stay := Outcome{Values: values}

	if !form.Begin() {
		stay.Notice = &NoticeDuplicate
		return stay
	}
	defer form.Finish()

	msg := types.ContactFromValues(values)
	if err := msg.Validate(); err != nil {
		stay.Notice = &NoticeContactInvalid
		stay.FieldErrors = types.FieldErrors(err)
		return stay
	}

	if sink != nil {
		id, err := sink.SaveContactMessage(ctx, &msg)
		if err != nil {
			log.Printf("[view] contact message from %s not saved: %v", msg.Email, err)
			stay.Notice = &NoticeMessageFailed
			return stay
		}
		log.Printf("[view] contact message %s saved", id)
	}

	return Outcome{Notice: &NoticeMessageSent, Redirect: "/contact"}
}
