package content

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/shopspring/decimal"

	portssvc "github.com/freshbites/journalsim/internal/core/ports/services"
	"github.com/freshbites/journalsim/internal/utils"
)

// receiptRenderer synthesizes the HTML documents attached to chat messages.
// Documents always show the actual amount; when the chat narrative differs,
// the document is the source of truth the learner must spot.
type receiptRenderer struct {
	templates map[string]*template.Template
}

// NewReceiptRenderer parses the built-in document templates. Panics on a
// malformed template, which is a programming error in this package.
func NewReceiptRenderer() portssvc.ReceiptRendererSvc {
	r := &receiptRenderer{templates: make(map[string]*template.Template, len(receiptBodies))}
	for id, body := range receiptBodies {
		r.templates[id] = template.Must(template.New(id).Parse(body))
	}
	return r
}

var _ portssvc.ReceiptRendererSvc = (*receiptRenderer)(nil)

// Render produces the document for a transaction template. Templates without
// a document yield empty content, not an error.
func (r *receiptRenderer) Render(templateID string, data portssvc.ReceiptData) (string, error) {
	tmpl, ok := r.templates[templateID]
	if !ok {
		return "", nil
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, receiptView{data: data}); err != nil {
		return "", fmt.Errorf("render receipt %s: %w", templateID, err)
	}
	return buf.String(), nil
}

// receiptView exposes the document values to the templates, pre-formatted in
// the Dutch currency convention.
type receiptView struct {
	data portssvc.ReceiptData
}

func (v receiptView) Number() string   { return v.data.DocumentNumber }
func (v receiptView) Date() string     { return v.data.Date.Format("02-01-2006") }
func (v receiptView) DateTime() string { return v.data.Date.Format("02-01-2006 15:04") }
func (v receiptView) Total() string    { return utils.FormatEuro(v.data.Amount) }

func (v receiptView) Partial() string {
	if v.data.Partial == nil {
		return utils.FormatEuro(decimal.Zero)
	}
	return utils.FormatEuro(*v.data.Partial)
}

func (v receiptView) Remaining() string {
	if v.data.Partial == nil {
		return utils.FormatEuro(v.data.Amount)
	}
	return utils.FormatEuro(v.data.Amount.Sub(*v.data.Partial))
}

// Frac formats a fraction of the total, for itemized document lines.
func (v receiptView) Frac(f float64) string {
	return utils.FormatEuro(v.data.Amount.Mul(decimal.NewFromFloat(f)))
}

// ExclVAT formats the total stripped of VAT at the given rate (0.09 or 0.21).
func (v receiptView) ExclVAT(rate float64) string {
	divisor := decimal.NewFromFloat(1 + rate)
	return utils.FormatEuro(v.data.Amount.DivRound(divisor, 2))
}

// VAT formats the VAT portion at the given rate over the total.
func (v receiptView) VAT(rate float64) string {
	return utils.FormatEuro(v.data.Amount.Mul(decimal.NewFromFloat(rate)).Round(2))
}

// receiptBodies maps transaction template IDs to their document markup.
// Low-VAT (9%) documents cover food, high-VAT (21%) equipment and services.
var receiptBodies = map[string]string{
	"a1_voorraad_contant": `<div style="font-family: 'Courier New', monospace; max-width: 450px; margin: 0 auto; padding: 30px; background: white; border: 2px solid #333;">
  <div style="text-align: center; border-bottom: 2px dashed #999; padding-bottom: 15px;">
    <h2 style="margin: 0; color: #2D5A3D;">Groothandel De Vers</h2>
    <p style="margin: 5px 0; font-size: 13px; color: #666;">Kerkstraat 42, 1017 GM Amsterdam</p>
    <p style="margin: 5px 0; font-size: 13px; color: #666;">KvK: 12345678 | BTW: NL123456789B01</p>
  </div>
  <p style="font-size: 14px;"><strong>KASSABON</strong></p>
  <p style="font-size: 13px;">Nr: {{.Number}}<br>Datum: {{.DateTime}}</p>
  <table style="width: 100%; font-size: 13px; border-top: 1px solid #999; border-bottom: 1px solid #999;">
    <tr><td>Verse groenten mix</td><td style="text-align: right;">{{.Frac 0.6}}</td></tr>
    <tr><td>Kruiden en specerijen</td><td style="text-align: right;">{{.Frac 0.25}}</td></tr>
    <tr><td>Olijfolie en azijn</td><td style="text-align: right;">{{.Frac 0.15}}</td></tr>
  </table>
  <table style="width: 100%; font-size: 16px; font-weight: bold; border-top: 2px solid #333; margin-top: 10px;">
    <tr><td>TOTAAL</td><td style="text-align: right;">{{.Total}}</td></tr>
  </table>
  <p style="font-size: 13px; color: #666;">Waarvan 9% BTW: {{.VAT 0.09}}</p>
  <p style="text-align: center; font-size: 12px; color: #666;">Contante betaling</p>
  <p style="text-align: center; font-size: 14px; font-weight: bold;">Bedankt voor uw aankoop!</p>
</div>`,

	"a2_voorraad_rekening": `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 40px; background: white; border: 1px solid #ddd;">
  <h1 style="margin: 0; color: #2196F3;">BioVers Groothandel</h1>
  <p style="margin: 5px 0; font-size: 13px; color: #666;">Biologische Producten | Industrieweg 156, 1234 AB Rotterdam</p>
  <div style="background: #f5f5f5; padding: 15px; margin: 20px 0; border-left: 4px solid #2196F3;">
    <h2 style="margin: 0 0 10px 0; font-size: 20px;">FACTUUR</h2>
    <p style="margin: 3px 0; font-size: 13px;"><strong>Factuurnr:</strong> {{.Number}}</p>
    <p style="margin: 3px 0; font-size: 13px;"><strong>Datum:</strong> {{.Date}}</p>
    <p style="margin: 3px 0; font-size: 13px;"><strong>KvK:</strong> 98765432 | <strong>BTW:</strong> NL987654321B01</p>
  </div>
  <p style="font-size: 13px;"><strong>Debiteur:</strong><br>FreshBites Food Truck<br>t.a.v. Fatima Ahmed<br>Foodtrucklaan 1, Amsterdam</p>
  <table style="width: 100%; border-collapse: collapse; font-size: 13px;">
    <tr style="background: #f5f5f5; border-bottom: 2px solid #2196F3;">
      <th style="text-align: left; padding: 10px;">Omschrijving</th><th style="text-align: right; padding: 10px;">Bedrag</th>
    </tr>
    <tr><td style="padding: 10px;">Biologische groenten en fruit (weeklevering)</td><td style="text-align: right; padding: 10px;">{{.ExclVAT 0.09}}</td></tr>
    <tr><td style="padding: 10px;">BTW 9%</td><td style="text-align: right; padding: 10px;">{{.VAT 0.09}}</td></tr>
    <tr style="background: #e3f2fd; font-weight: bold;"><td style="padding: 12px;">TOTAAL</td><td style="text-align: right; padding: 12px;">{{.Total}}</td></tr>
  </table>
  <div style="background: #fff3cd; padding: 15px; border-left: 4px solid #ffc107; margin-top: 20px;">
    <p style="margin: 0; font-size: 13px;"><strong>Betaling:</strong> binnen 30 dagen naar IBAN NL12 RABO 0123 4567 89 t.n.v. BioVers Groothandel B.V. o.v.v. {{.Number}}</p>
  </div>
</div>`,

	"b1_verkoop_factuur": `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 40px; background: white; border: 1px solid #ddd;">
  <h1 style="margin: 0; color: #FF6B35;">De Witte &amp; Partners</h1>
  <p style="margin: 5px 0; font-size: 14px; color: #666;">Advocatenkantoor | Herengracht 456, 1017 CA Amsterdam</p>
  <div style="background: #fff5f0; padding: 15px; margin: 20px 0; border-left: 4px solid #FF6B35;">
    <h2 style="margin: 0 0 10px 0; font-size: 20px;">BESTELBON</h2>
    <p style="margin: 3px 0; font-size: 13px;"><strong>Bestelnr:</strong> {{.Number}}</p>
    <p style="margin: 3px 0; font-size: 13px;"><strong>Datum:</strong> {{.DateTime}}</p>
    <p style="margin: 3px 0; font-size: 13px;"><strong>Leverancier:</strong> FreshBites | <strong>Contact:</strong> Fatima Ahmed</p>
  </div>
  <p style="font-size: 14px; font-weight: bold; color: #FF6B35;">Lunchcatering voor vergadering (12 personen)</p>
  <table style="width: 100%; border-collapse: collapse; font-size: 13px;">
    <tr style="background: #f5f5f5; border-bottom: 2px solid #FF6B35;">
      <th style="text-align: left; padding: 10px;">Omschrijving</th><th style="text-align: right; padding: 10px;">Totaal</th>
    </tr>
    <tr><td style="padding: 10px;">Luxe broodjes arrangement</td><td style="text-align: right; padding: 10px;">{{.Frac 0.5}}</td></tr>
    <tr><td style="padding: 10px;">Verse saladebowls</td><td style="text-align: right; padding: 10px;">{{.Frac 0.35}}</td></tr>
    <tr><td style="padding: 10px;">Koffie en thee service</td><td style="text-align: right; padding: 10px;">{{.Frac 0.15}}</td></tr>
    <tr><td style="padding: 10px;">BTW 9%: {{.VAT 0.09}} (in totaal inbegrepen)</td><td></td></tr>
    <tr style="background: #fff5f0; font-weight: bold;"><td style="padding: 12px;">TE BETALEN</td><td style="text-align: right; padding: 12px;">{{.Total}}</td></tr>
  </table>
  <div style="background: #e8f5e9; padding: 15px; border-left: 4px solid #4CAF50; margin-top: 20px;">
    <p style="margin: 0; font-size: 13px;"><strong>✓ Bestelling geaccepteerd</strong> — levering conform afspraak, betaling binnen 14 dagen.</p>
  </div>
</div>`,

	"d1_inventaris_split": `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 40px; background: white; border: 1px solid #ddd;">
  <h1 style="margin: 0; color: #e91e63;">KeukenGigant</h1>
  <p style="margin: 5px 0; font-size: 14px; color: #666;">Professionele Keukenapparatuur | Ambachtsweg 78, 3446 GR Woerden</p>
  <div style="background: #fce4ec; padding: 15px; margin: 20px 0; border-left: 4px solid #e91e63;">
    <h2 style="margin: 0 0 10px 0; font-size: 20px;">FACTUUR</h2>
    <p style="margin: 3px 0; font-size: 13px;"><strong>Factuurnr:</strong> {{.Number}}</p>
    <p style="margin: 3px 0; font-size: 13px;"><strong>Datum:</strong> {{.Date}}</p>
    <p style="margin: 3px 0; font-size: 13px;"><strong>KvK:</strong> 55667788 | <strong>BTW:</strong> NL556677889B01</p>
  </div>
  <table style="width: 100%; border-collapse: collapse; font-size: 13px;">
    <tr style="background: #f5f5f5; border-bottom: 2px solid #e91e63;">
      <th style="text-align: left; padding: 10px;">Omschrijving</th><th style="text-align: right; padding: 10px;">Bedrag</th>
    </tr>
    <tr><td style="padding: 10px;">Professionele Combi-Oven GC2000 (incl. installatie)</td><td style="text-align: right; padding: 10px;">{{.ExclVAT 0.21}}</td></tr>
    <tr><td style="padding: 10px;">BTW 21%</td><td style="text-align: right; padding: 10px;">{{.VAT 0.21}}</td></tr>
    <tr style="background: #fce4ec; font-weight: bold;"><td style="padding: 12px;">TOTAAL FACTUURBEDRAG</td><td style="text-align: right; padding: 12px;">{{.Total}}</td></tr>
  </table>
  <div style="background: #fff9c4; padding: 15px; border-left: 4px solid #fbc02d; margin-top: 20px;">
    <h3 style="margin: 0 0 10px 0; font-size: 14px; color: #f57c00;">⚠️ Betalingsregeling</h3>
    <table style="width: 100%; font-size: 13px;">
      <tr style="background: #e8f5e9;"><td style="padding: 8px;">✓ Aanbetaling (contant bij levering):</td><td style="text-align: right; padding: 8px; font-weight: bold; color: #2e7d32;">{{.Partial}}</td></tr>
      <tr style="background: #ffebee;"><td style="padding: 8px;">Restbedrag (binnen 14 dagen):</td><td style="text-align: right; padding: 8px; font-weight: bold; color: #c62828;">{{.Remaining}}</td></tr>
    </table>
    <p style="margin: 10px 0 0 0; font-size: 12px;">Restbedrag naar IBAN NL98 INGB 0987 6543 21 t.n.v. KeukenGigant B.V. o.v.v. {{.Number}}</p>
  </div>
  <p style="font-size: 12px;"><strong>📋 Garantie:</strong> 2 jaar volledige fabrieksgarantie</p>
</div>`,

	"d2_reparatie_split": `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 40px; background: white; border: 1px solid #ddd;">
  <h1 style="margin: 0; color: #ff9800;">TechFix Service</h1>
  <p style="margin: 5px 0; font-size: 14px; color: #666;">Spoedreparaties &amp; Onderhoud | Reparatieweg 23, 1234 XY Utrecht</p>
  <div style="background: #fff3e0; padding: 15px; margin: 20px 0; border-left: 4px solid #ff9800;">
    <h2 style="margin: 0 0 10px 0; font-size: 20px;">REPARATIEFACTUUR</h2>
    <p style="margin: 3px 0; font-size: 13px;"><strong>Factuurnr:</strong> {{.Number}}</p>
    <p style="margin: 3px 0; font-size: 13px;"><strong>Datum:</strong> {{.Date}}</p>
    <p style="margin: 3px 0; font-size: 13px;"><strong>Monteur:</strong> J. van Berg | ⚡ Spoedopdracht</p>
  </div>
  <div style="background: #ffebee; padding: 12px; border-left: 4px solid #f44336; margin-bottom: 15px;">
    <p style="margin: 0; font-size: 13px;"><strong>⚠️ Storingsbeschrijving:</strong> koelinstallatie geeft foutcode E-23, compressor maakt onregelmatig geluid.</p>
  </div>
  <table style="width: 100%; border-collapse: collapse; font-size: 13px;">
    <tr style="background: #f5f5f5; border-bottom: 2px solid #ff9800;">
      <th style="text-align: left; padding: 10px;">Omschrijving</th><th style="text-align: right; padding: 10px;">Totaal</th>
    </tr>
    <tr><td style="padding: 10px;">Arbeidsloon monteur (2,5 uur, incl. spoedtoeslag)</td><td style="text-align: right; padding: 10px;">{{.Frac 0.4}}</td></tr>
    <tr><td style="padding: 10px;">Compressor thermostaat (COMP-TH-500)</td><td style="text-align: right; padding: 10px;">{{.Frac 0.35}}</td></tr>
    <tr><td style="padding: 10px;">Koelmiddel R134a (0,5 kg)</td><td style="text-align: right; padding: 10px;">{{.Frac 0.15}}</td></tr>
    <tr><td style="padding: 10px;">Kleine onderdelen</td><td style="text-align: right; padding: 10px;">{{.Frac 0.1}}</td></tr>
    <tr><td style="padding: 10px;">BTW 21%: {{.VAT 0.21}} (in totaal inbegrepen)</td><td></td></tr>
    <tr style="background: #fff3e0; font-weight: bold;"><td style="padding: 12px;">TOTAAL FACTUURBEDRAG</td><td style="text-align: right; padding: 12px;">{{.Total}}</td></tr>
  </table>
  <div style="background: #fff9c4; padding: 15px; border-left: 4px solid #fbc02d; margin-top: 20px;">
    <h3 style="margin: 0 0 10px 0; font-size: 14px; color: #f57c00;">💳 Betalingsafspraak</h3>
    <table style="width: 100%; font-size: 13px;">
      <tr style="background: #e8f5e9;"><td style="padding: 8px;">✓ Contant betaald bij afronding:</td><td style="text-align: right; padding: 8px; font-weight: bold; color: #2e7d32;">{{.Partial}}</td></tr>
      <tr style="background: #ffebee;"><td style="padding: 8px;">Restbedrag (binnen 7 dagen):</td><td style="text-align: right; padding: 8px; font-weight: bold; color: #c62828;">{{.Remaining}}</td></tr>
    </table>
    <p style="margin: 10px 0 0 0; font-size: 12px;">Restbedrag naar IBAN NL45 ABNA 0567 8901 23 t.n.v. TechFix Service B.V. o.v.v. {{.Number}}</p>
  </div>
  <p style="font-size: 12px;"><strong>🛡️ Garantie:</strong> 3 maanden op onderdelen en arbeid</p>
</div>`,
}
