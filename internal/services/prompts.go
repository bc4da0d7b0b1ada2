package services

// prompts.go holds the agent's call script. The replies follow the clinic's
// Hinglish phone manner; keeping them in one place makes the script easy to
// tweak without touching the state machine.

const (
	// PromptGreeting opens the call and asks the identity question.
	// Takes the patient's full name.
	PromptGreeting = "Namaste, main aapka healthcare agent hoon. Kya aap %s hain?"

	// PromptRetryName re-asks the identity question after a mismatch.
	PromptRetryName = "Mujhe lagta hai ki main galat person se baat kar raha hoon. Kya aap %s hain?"

	// PromptAskDOB asks for the date of birth in YYYY-MM-DD form.
	PromptAskDOB = "Aapki date of birth kya hai? For example, 1980-08-12."

	// PromptRetryDOB re-asks after a DOB mismatch.
	PromptRetryDOB = "Date of birth match nahi ho rahi hai. Kya aap sure hain?"

	// PromptFirstSymptom thanks the patient and asks the first screening
	// question. Takes the symptom description.
	PromptFirstSymptom = "Dhanyavaad. Ab main aapke health ke baare mein kuch sawal poochunga. Kya aapko %s hai?"

	// PromptNextSymptom asks the next screening question. Takes the symptom
	// description.
	PromptNextSymptom = "Kya aapko %s hai?"

	// PromptAlertSent tells the patient the care team has been notified.
	PromptAlertSent = "Main aapki report on-call medical team ko bhej raha hoon. Koi chinta ki baat nahi hai, team aapko jaldi hi contact karegi."

	// PromptAlertFailed apologizes when the alert could not be delivered.
	PromptAlertFailed = "Alert raise karne mein problem hui. Main phir se try karunga."

	// PromptNoRisk reassures the patient and reminds them of the follow-up.
	// Takes the follow-up date and the provider name.
	PromptNoRisk = "Aapke koi high-risk symptoms nahi hain. Yeh achi baat hai. Aapko yaad dilana chahta hoon ki aapka follow-up consultation %s ko %s ke saath scheduled hai."

	// PromptClosingAlert ends a call that raised an alert.
	PromptClosingAlert = "Ab main call khatam kar raha hoon. Dhanyavaad aur apna khayal rakhiye."

	// PromptClosing ends a call with no findings.
	PromptClosing = "Dhanyavaad aur apna khayal rakhiye. Goodbye."

	// PromptVerifyLimit ends the call when identity could not be verified
	// within the configured attempt limit.
	PromptVerifyLimit = "Main aapki identity verify nahi kar paya. Clinic team aapko directly contact karegi. Dhanyavaad."

	// PromptFallback is used for input in a terminal or unmapped state.
	PromptFallback = "Mujhe samajh nahi aaya, please repeat."
)
