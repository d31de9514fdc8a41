package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"chargecompare-api/config"
	"chargecompare-api/models"
)

// EmailService sends saved-comparison summaries to the account address.
type EmailService struct {
	config *config.Config
	dialer *gomail.Dialer
}

func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		config: cfg,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
	}
}

// SendComparisonEmail emails a saved comparison's yearly numbers.
func (es *EmailService) SendComparisonEmail(email, name string, comparison *models.SavedComparison) error {
	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", es.config.FromName, es.config.FromEmail))
	m.SetHeader("To", email)
	m.SetHeader("Subject", fmt.Sprintf("ChargeCompare - Your \"%s\" comparison", comparison.Name))

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Your Cost Comparison</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { text-align: center; background: #2e7d32; color: white; padding: 20px; border-radius: 10px 10px 0 0; }
        .content { background: #f8f9fa; padding: 30px; border-radius: 0 0 10px 10px; }
        .figure { background: #e9ecef; padding: 16px; text-align: center; border-radius: 8px; margin: 12px 0; }
        .amount { font-size: 28px; font-weight: bold; color: #2e7d32; }
        .footer { text-align: center; margin-top: 20px; color: #666; font-size: 14px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>ChargeCompare</h1>
            <p>Yearly Cost Comparison</p>
        </div>
        <div class="content">
            <h2>Hello %s!</h2>
            <p>Here are the yearly numbers for your saved comparison "%s"
            at %.0f miles per day:</p>
            <div class="figure">
                <p>EV charged at home</p>
                <span class="amount">$%.2f</span>
            </div>
            <div class="figure">
                <p>Gas vehicle, regular grade</p>
                <span class="amount">$%.2f</span>
            </div>
            <div class="figure">
                <p>Estimated yearly savings</p>
                <span class="amount">$%.2f</span>
            </div>
        </div>
        <div class="footer">
            <p>Prices and efficiencies are the values you entered when
            saving; rerun the comparison for current rates.</p>
        </div>
    </div>
</body>
</html>`, name, comparison.Name, comparison.BaseDistance,
		comparison.YearlyEVHomeCost, comparison.YearlyGasRegularCost, comparison.YearlySavings)

	m.SetBody("text/html", htmlBody)

	if err := es.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send comparison email: %w", err)
	}
	return nil
}
