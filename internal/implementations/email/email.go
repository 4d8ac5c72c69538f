package email

import (
	"context"
	"encoding/json"
	"errors"

	"bookstand/internal/core/domain/account"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

type ChangeNoticeSender struct {
	ses *ses.Client
	// This address must be verified with Amazon SES.
	sender                  string
	passwordChangedTemplate string
}

func NewChangeNoticeSender(
	awsConfig aws.Config,
	sender string,
	passwordChangedTemplate string,
) *ChangeNoticeSender {
	return &ChangeNoticeSender{
		ses:                     ses.NewFromConfig(awsConfig),
		sender:                  sender,
		passwordChangedTemplate: passwordChangedTemplate,
	}
}

func (s *ChangeNoticeSender) SendChangeNotice(ctx context.Context, acc account.Account) error {
	if acc.Email == "" {
		return errors.New("account email is not defined")
	}

	templateParamsBytes, err := json.Marshal(
		passwordChangedTemplateParams{Username: acc.Username},
	)
	if err != nil {
		return err
	}
	templateParams := string(templateParamsBytes)

	_, err = s.ses.SendTemplatedEmail(
		ctx,
		&ses.SendTemplatedEmailInput{
			Source: &s.sender,
			Destination: &types.Destination{
				CcAddresses: []string{},
				ToAddresses: []string{acc.Email},
			},
			Template:     &s.passwordChangedTemplate,
			TemplateData: &templateParams,
		},
	)
	return err
}

type passwordChangedTemplateParams struct {
	Username string `json:"username"`
}
