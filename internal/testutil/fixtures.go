package testutil

import "github.com/jharland/commit-pilot/internal/domain"

// SampleDiff is a small staged diff for testing.
const SampleDiff = `diff --git a/a.js b/a.js
index 1234567..abcdefg 100644
--- a/a.js
+++ b/a.js
@@ -1,2 +1,3 @@
 function main() {
+console.log(1)
 }
`

// SampleMessage is a well-formed generated commit message.
const SampleMessage = "feat: add logging\n\nadds a debug log line"

// SampleTypes is a minimal commit-type taxonomy.
var SampleTypes = []domain.CommitType{
	{Name: "feat", Description: "a new feature"},
	{Name: "fix", Description: "a bug fix"},
}
