package catalogue

import (
	"conforma/internal/assessment/models"
	id "conforma/pkg/domain"
)

// registeredFrameworks is the build-time catalogue. Presentation order of
// questions within a framework is the slice order; keep it stable across
// releases so saved responses keep lining up with the checklist.
var registeredFrameworks = []struct {
	id        id.FrameworkID
	name      string
	version   string
	questions []models.AuditQuestion
}{
	{
		id:      "quality-9001",
		name:    "Quality Management System",
		version: "2025.1",
		questions: []models.AuditQuestion{
			{
				ID: "q9001-01", FrameworkID: "quality-9001",
				Text:            "Are quality objectives documented, measurable, and consistent with the quality policy?",
				ClauseReference: "6.2",
				Severity:        models.SeverityMajor,
				ExpectedEvidence: []string{
					"Documented quality objectives",
					"Review records showing objectives are tracked",
				},
			},
			{
				ID: "q9001-02", FrameworkID: "quality-9001",
				Text:            "Is there a documented procedure for the control of nonconforming outputs?",
				ClauseReference: "8.7",
				Severity:        models.SeverityCritical,
				ExpectedEvidence: []string{
					"Nonconforming output procedure",
					"Segregation and disposition records",
					"Customer concession records where applicable",
				},
			},
			{
				ID: "q9001-03", FrameworkID: "quality-9001",
				Text:            "Are internal audits planned and performed at defined intervals by impartial auditors?",
				ClauseReference: "9.2",
				Severity:        models.SeverityMajor,
				ExpectedEvidence: []string{
					"Internal audit programme",
					"Audit reports for the current cycle",
				},
			},
			{
				ID: "q9001-04", FrameworkID: "quality-9001",
				Text:            "Are monitoring and measuring resources calibrated and traceable to measurement standards?",
				ClauseReference: "7.1.5",
				Severity:        models.SeverityCritical,
				ExpectedEvidence: []string{
					"Calibration certificates",
					"Calibration schedule and status register",
				},
			},
			{
				ID: "q9001-05", FrameworkID: "quality-9001",
				Text:            "Are externally provided processes, products, and services evaluated and monitored?",
				ClauseReference: "8.4",
				Severity:        models.SeverityMajor,
				ExpectedEvidence: []string{
					"Approved supplier list",
					"Supplier evaluation records",
				},
			},
			{
				ID: "q9001-06", FrameworkID: "quality-9001",
				Text:            "Does top management review the QMS at planned intervals with documented outputs?",
				ClauseReference: "9.3",
				Severity:        models.SeverityMajor,
				ExpectedEvidence: []string{
					"Management review minutes",
					"Action tracking from previous reviews",
				},
			},
			{
				ID: "q9001-07", FrameworkID: "quality-9001",
				Text:            "Are corrective actions for nonconformities evaluated for effectiveness and recorded?",
				ClauseReference: "10.2",
				Severity:        models.SeverityCritical,
				ExpectedEvidence: []string{
					"Corrective action register",
					"Root-cause analysis records",
					"Effectiveness verification records",
				},
			},
			{
				ID: "q9001-08", FrameworkID: "quality-9001",
				Text:            "Is documented information controlled for distribution, access, and retention?",
				ClauseReference: "7.5.3",
				Severity:        models.SeverityMinor,
				ExpectedEvidence: []string{
					"Document control procedure",
					"Master document list",
				},
			},
			{
				ID: "q9001-09", FrameworkID: "quality-9001",
				Text:            "Are competence requirements defined and training records maintained for roles affecting quality?",
				ClauseReference: "7.2",
				Severity:        models.SeverityMinor,
				ExpectedEvidence: []string{
					"Competence matrix",
					"Training records",
				},
			},
			{
				ID: "q9001-10", FrameworkID: "quality-9001",
				Text:            "Is organizational knowledge necessary for process operation identified and maintained?",
				ClauseReference: "7.1.6",
				Severity:        models.SeverityMinor,
				ExpectedEvidence: []string{
					"Knowledge repository or equivalent",
				},
			},
		},
	},
	{
		id:      "environmental-14001",
		name:    "Environmental Management System",
		version: "2025.1",
		questions: []models.AuditQuestion{
			{
				ID: "e14001-01", FrameworkID: "environmental-14001",
				Text:            "Have environmental aspects and their impacts been identified and evaluated for significance?",
				ClauseReference: "6.1.2",
				Severity:        models.SeverityCritical,
				ExpectedEvidence: []string{
					"Aspects and impacts register",
					"Significance evaluation criteria",
				},
			},
			{
				ID: "e14001-02", FrameworkID: "environmental-14001",
				Text:            "Are compliance obligations identified, accessible, and evaluated periodically?",
				ClauseReference: "6.1.3",
				Severity:        models.SeverityCritical,
				ExpectedEvidence: []string{
					"Compliance obligations register",
					"Compliance evaluation records",
				},
			},
			{
				ID: "e14001-03", FrameworkID: "environmental-14001",
				Text:            "Are emergency preparedness and response procedures established and tested?",
				ClauseReference: "8.2",
				Severity:        models.SeverityMajor,
				ExpectedEvidence: []string{
					"Emergency response plan",
					"Drill records",
				},
			},
			{
				ID: "e14001-04", FrameworkID: "environmental-14001",
				Text:            "Is significant environmental performance monitored, measured, and analysed?",
				ClauseReference: "9.1.1",
				Severity:        models.SeverityMajor,
				ExpectedEvidence: []string{
					"Monitoring plan",
					"Performance trend data",
				},
			},
			{
				ID: "e14001-05", FrameworkID: "environmental-14001",
				Text:            "Are waste streams segregated, tracked, and disposed of through licensed contractors?",
				ClauseReference: "8.1",
				Severity:        models.SeverityMajor,
				ExpectedEvidence: []string{
					"Waste transfer notes",
					"Contractor licences",
				},
			},
			{
				ID: "e14001-06", FrameworkID: "environmental-14001",
				Text:            "Are environmental objectives established with defined responsibilities and timeframes?",
				ClauseReference: "6.2",
				Severity:        models.SeverityMinor,
				ExpectedEvidence: []string{
					"Environmental objectives and programmes",
				},
			},
			{
				ID: "e14001-07", FrameworkID: "environmental-14001",
				Text:            "Is relevant environmental training delivered and awareness maintained?",
				ClauseReference: "7.3",
				Severity:        models.SeverityMinor,
				ExpectedEvidence: []string{
					"Training records",
					"Awareness communications",
				},
			},
			{
				ID: "e14001-08", FrameworkID: "environmental-14001",
				Text:            "Are external communications on environmental matters recorded and responded to?",
				ClauseReference: "7.4.3",
				Severity:        models.SeverityMinor,
				ExpectedEvidence: []string{
					"Communications log",
				},
			},
		},
	},
	{
		id:      "safety-45001",
		name:    "Occupational Health and Safety Management System",
		version: "2025.1",
		questions: []models.AuditQuestion{
			{
				ID: "s45001-01", FrameworkID: "safety-45001",
				Text:            "Are hazards identified and risks assessed with controls applied per the hierarchy of controls?",
				ClauseReference: "6.1.2",
				Severity:        models.SeverityCritical,
				ExpectedEvidence: []string{
					"Risk assessment register",
					"Control implementation records",
				},
			},
			{
				ID: "s45001-02", FrameworkID: "safety-45001",
				Text:            "Are incidents reported, investigated, and corrective actions tracked to closure?",
				ClauseReference: "10.2",
				Severity:        models.SeverityCritical,
				ExpectedEvidence: []string{
					"Incident register",
					"Investigation reports",
					"Corrective action records",
				},
			},
			{
				ID: "s45001-03", FrameworkID: "safety-45001",
				Text:            "Are workers consulted and able to participate in OH&S decision making?",
				ClauseReference: "5.4",
				Severity:        models.SeverityMajor,
				ExpectedEvidence: []string{
					"Safety committee minutes",
					"Consultation records",
				},
			},
			{
				ID: "s45001-04", FrameworkID: "safety-45001",
				Text:            "Is statutory inspection and maintenance of plant and equipment up to date?",
				ClauseReference: "8.1",
				Severity:        models.SeverityMajor,
				ExpectedEvidence: []string{
					"Inspection certificates",
					"Maintenance schedule",
				},
			},
			{
				ID: "s45001-05", FrameworkID: "safety-45001",
				Text:            "Are contractors inducted and their OH&S performance controlled?",
				ClauseReference: "8.1.4",
				Severity:        models.SeverityMajor,
				ExpectedEvidence: []string{
					"Induction records",
					"Contractor control procedure",
				},
			},
			{
				ID: "s45001-06", FrameworkID: "safety-45001",
				Text:            "Is personal protective equipment issued, maintained, and its use monitored?",
				ClauseReference: "8.1",
				Severity:        models.SeverityMinor,
				ExpectedEvidence: []string{
					"PPE issue records",
				},
			},
			{
				ID: "s45001-07", FrameworkID: "safety-45001",
				Text:            "Are OH&S objectives and performance indicators reviewed by management?",
				ClauseReference: "9.3",
				Severity:        models.SeverityMinor,
				ExpectedEvidence: []string{
					"Management review minutes",
				},
			},
		},
	},
	{
		id:      "pharma-distribution",
		name:    "Good Distribution Practice",
		version: "2025.1",
		questions: []models.AuditQuestion{
			{
				ID: "gdp-01", FrameworkID: "pharma-distribution",
				Text:            "Is a designated Responsible Person appointed with defined GDP duties?",
				ClauseReference: "Ch. 2.2",
				Severity:        models.SeverityCritical,
				ExpectedEvidence: []string{
					"Appointment letter",
					"Responsible Person job description",
				},
			},
			{
				ID: "gdp-02", FrameworkID: "pharma-distribution",
				Text:            "Are temperature-controlled storage areas mapped, monitored, and alarmed?",
				ClauseReference: "Ch. 3.2.1",
				Severity:        models.SeverityCritical,
				ExpectedEvidence: []string{
					"Temperature mapping study",
					"Continuous monitoring records",
					"Alarm test records",
				},
			},
			{
				ID: "gdp-03", FrameworkID: "pharma-distribution",
				Text:            "Is there a documented procedure for handling suspected falsified medicinal products?",
				ClauseReference: "Ch. 6.4",
				Severity:        models.SeverityCritical,
				ExpectedEvidence: []string{
					"Falsified product procedure",
					"Quarantine records",
					"Competent authority notification records",
				},
			},
			{
				ID: "gdp-04", FrameworkID: "pharma-distribution",
				Text:            "Are suppliers and customers qualified before any supply transaction?",
				ClauseReference: "Ch. 5.2",
				Severity:        models.SeverityMajor,
				ExpectedEvidence: []string{
					"Supplier qualification records",
					"Customer licence verification records",
				},
			},
			{
				ID: "gdp-05", FrameworkID: "pharma-distribution",
				Text:            "Are product recalls executed against a tested recall procedure?",
				ClauseReference: "Ch. 6.5",
				Severity:        models.SeverityMajor,
				ExpectedEvidence: []string{
					"Recall procedure",
					"Mock recall records",
				},
			},
			{
				ID: "gdp-06", FrameworkID: "pharma-distribution",
				Text:            "Are deviations documented, investigated, and CAPA applied?",
				ClauseReference: "Ch. 1.4",
				Severity:        models.SeverityMajor,
				ExpectedEvidence: []string{
					"Deviation log",
					"CAPA records",
				},
			},
			{
				ID: "gdp-07", FrameworkID: "pharma-distribution",
				Text:            "Is transport validated or risk-assessed for temperature-sensitive products?",
				ClauseReference: "Ch. 9.2",
				Severity:        models.SeverityMajor,
				ExpectedEvidence: []string{
					"Transport risk assessment",
					"Lane validation data",
				},
			},
			{
				ID: "gdp-08", FrameworkID: "pharma-distribution",
				Text:            "Are returned products assessed before being restored to saleable stock?",
				ClauseReference: "Ch. 6.3",
				Severity:        models.SeverityMinor,
				ExpectedEvidence: []string{
					"Returns assessment records",
				},
			},
			{
				ID: "gdp-09", FrameworkID: "pharma-distribution",
				Text:            "Are premises secured against unauthorized access to medicinal products?",
				ClauseReference: "Ch. 3.1",
				Severity:        models.SeverityMinor,
				ExpectedEvidence: []string{
					"Access control records",
				},
			},
			{
				ID: "gdp-10", FrameworkID: "pharma-distribution",
				Text:            "Is GDP training delivered on induction and refreshed periodically?",
				ClauseReference: "Ch. 2.4",
				Severity:        models.SeverityMinor,
				ExpectedEvidence: []string{
					"Training plan",
					"Training records",
				},
			},
		},
	},
}
