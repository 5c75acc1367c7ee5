package validation

// RegistrationRules validates a new school. Either schoolName or name may
// carry the school's name.
var RegistrationRules = RuleSet{
	Required: [][]string{
		{"schoolName", "name"},
		{"institutionLevel"},
		{"address"},
		{"email"},
		{"phoneNumber"},
		{"password"},
		{"confirmPassword"},
		{"country"},
		{"currency"},
	},
	Rules: []Rule{
		{Field: "schoolName", Check: single(CheckName)},
		{Field: "name", Check: single(CheckName)},
		{Field: "institutionLevel", Check: single(CheckInstitutionLevel)},
		{Field: "address", Check: single(CheckAddress)},
		{Field: "email", Check: single(CheckEmail)},
		{Field: "phoneNumber", Check: single(CheckPhoneNumber)},
		{Field: "password", Check: password},
		{Field: "confirmPassword", Check: against("password", CheckConfirmPassword)},
		{Field: "country", Check: present},
		{Field: "currency", Check: single(CheckCurrency)},
	},
}

// LoginRules only checks the email grammar; password strength is not
// re-evaluated at login.
var LoginRules = RuleSet{
	Required: [][]string{{"email"}, {"password"}},
	Rules: []Rule{
		{Field: "email", Check: single(CheckEmail)},
		{Field: "password", Check: present},
	},
}

// ProfileUpdateRules validates a partial profile update. Nothing is required.
var ProfileUpdateRules = RuleSet{
	Rules: []Rule{
		{Field: "schoolName", Check: single(CheckName)},
		{Field: "name", Check: single(CheckName)},
		{Field: "institutionLevel", Check: single(CheckInstitutionLevel)},
		{Field: "address", Check: single(CheckAddress)},
		{Field: "email", Check: single(CheckEmail)},
		{Field: "phoneNumber", Check: single(CheckPhoneNumber)},
		{Field: "country", Check: present},
		{Field: "currency", Check: single(CheckCurrency)},
		{Field: "backdropImage", Check: present},
		{Field: "avatarImage", Check: present},
	},
}
