package domain

// FAQ is a static help entry grouped by category label.
type FAQ struct {
	Label    string `json:"label"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

var FAQs = []FAQ{
	{
		Label:    "Registration & Approval",
		Question: "How do I register as a patient or doctor?",
		Answer:   "Go to the 'Register' page, select your role (Patient or Doctor), and fill in the required details. Once submitted, your account will be pending admin approval.",
	},
	{
		Label:    "Registration & Approval",
		Question: "How long does admin approval take?",
		Answer:   "Admin approval typically takes 1-2 business days. You will receive a notification once your account is approved.",
	},
	{
		Label:    "Registration & Approval",
		Question: "What happens after my account is approved?",
		Answer:   "Once approved, you can log in and complete your medical profile to access the dashboard.",
	},
	{
		Label:    "Tickets",
		Question: "How do I submit a triage ticket?",
		Answer:   "From the dashboard choose 'New Ticket', describe your problem, optionally add vitals, symptoms and attachments, and submit. An admin will assign a doctor to your ticket.",
	},
	{
		Label:    "Tickets",
		Question: "Can I edit my ticket after submitting it?",
		Answer:   "Yes, you can edit or delete your own tickets. Once the assigned doctor submits a report, the ticket is marked resolved.",
	},
	{
		Label:    "Reports",
		Question: "Who can see my report?",
		Answer:   "Only you, the assigned doctor and administrators can see the report for your ticket.",
	},
	{
		Label:    "AI Assistant",
		Question: "What does the AI assistant know about me?",
		Answer:   "When you chat, the assistant is given your medical profile. When a doctor opens a chat for a ticket, it is additionally given the ticket details and attachments.",
	},
	{
		Label:    "AI Assistant",
		Question: "Are my chats saved?",
		Answer:   "Chat sessions are stored so you can resume them later. You can end a session at any time, which deletes it.",
	},
}
