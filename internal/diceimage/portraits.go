package diceimage

import (
	"context"
	"image"

	// avatars are served as png or jpeg
	_ "image/jpeg"

	"github.com/bwmarrin/discordgo"
	"github.com/pkg/errors"
)

// Portraits resolves who the bot is and what users look like
type Portraits interface {
	Self() (userID, name string)
	Avatar(ctx context.Context, userID string) (image.Image, error)
}

var _ Portraits = &SessionPortraits{}

// SessionPortraits reads the bot's identity from the session state and downloads avatars through the REST API
type SessionPortraits struct {
	session *discordgo.Session
}

func NewSessionPortraits(session *discordgo.Session) *SessionPortraits {
	return &SessionPortraits{
		session: session,
	}
}

func (p *SessionPortraits) Self() (string, string) {
	if p.session.State == nil || p.session.State.User == nil {
		return "", ""
	}

	return p.session.State.User.ID, p.session.State.User.Username
}

func (p *SessionPortraits) Avatar(ctx context.Context, userID string) (image.Image, error) {
	user, err := p.session.User(userID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to look up user %s", userID)
	}

	img, err := p.session.UserAvatarDecode(user, discordgo.WithContext(ctx))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to download avatar of %s", userID)
	}

	return img, nil
}
