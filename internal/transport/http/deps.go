package http

import (
	"github.com/ManyRagDev/brincar-educando-2/internal/infrastructure/dynamo"
	jwtinfra "github.com/ManyRagDev/brincar-educando-2/internal/infrastructure/jwt"
	s3infra "github.com/ManyRagDev/brincar-educando-2/internal/infrastructure/s3"
	"github.com/ManyRagDev/brincar-educando-2/internal/infrastructure/smtp"
	"github.com/ManyRagDev/brincar-educando-2/internal/infrastructure/sns"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	ChildRepo      *dynamo.ChildRepo
	ActivityRepo   *dynamo.ActivityRepo
	DiaryRepo      *dynamo.DiaryRepo
	JourneyRepo    *dynamo.JourneyRepo
	SubscriberRepo *dynamo.SubscriberRepo
	MailLogRepo    *dynamo.MailLogRepo
	S3Store        *s3infra.Store
	Mailer         smtp.Mailer
	Publisher      sns.Publisher
	JWTVerifier    *jwtinfra.Verifier
}
