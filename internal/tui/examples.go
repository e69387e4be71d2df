package tui

// example is a canned snippet offered on the examples tab.
type example struct {
	Title    string
	Language string
	Source   string
}

var examples = []example{
	{
		Title:    "SQL built by concatenation",
		Language: "python",
		Source: `def process_user_input(user_input):
    query = "SELECT * FROM users WHERE name = '" + user_input + "'"
    return execute_query(query)`,
	},
	{
		Title:    "Hardcoded password check",
		Language: "javascript",
		Source: `function validateUser(user) {
    if (user.password == "admin123") {
        return true;
    }
    return false;
}`,
	},
	{
		Title:    "Shell command from input",
		Language: "python",
		Source: `import os
def run_command(cmd):
    result = os.system(cmd)
    return result`,
	},
}
