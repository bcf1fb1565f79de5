package chat_test

import (
	"context"

	"github.com/spachava753/podkit/chat"
	"github.com/spachava753/podkit/pod"
	"github.com/spachava753/podkit/resolve"
	"github.com/spachava753/podkit/user"
)

func composeStartChatWithSameCompanyColleagues(ctx context.Context, conn *pod.Connection, emails []string) (*pod.Chat, error) {
	var participants []resolve.Identifier
	for _, email := range emails {
		same, known, err := user.SameRealm(ctx, conn, resolve.Email(email))
		if err != nil {
			return nil, err
		}
		if known && same {
			participants = append(participants, resolve.Email(email))
		}
	}
	if len(participants) == 0 {
		return nil, nil
	}
	return chat.Start(ctx, conn, participants...)
}

func composeCrossPodChatRecords(ctx context.Context, conn *pod.Connection) ([]resolve.Record, error) {
	chats, err := chat.List(ctx, conn)
	if err != nil {
		return nil, err
	}
	var records []resolve.Record
	for i := range chats {
		if chats[i].CrossPod {
			records = append(records, chat.ToRecord(&chats[i]))
		}
	}
	return records, nil
}
