// File: internal/site/pages.go
package site

// Static HTML bodies for the pages Facebook requires an app to publish.
const (
	privacyPolicyHTML = `
        <h1>Privacy Policy</h1>
        <p>This app is used to display Facebook Page insights and analytics.</p>
        <p>We only access the following data:</p>
        <ul>
            <li>Public profile information</li>
            <li>Page insights for pages you manage</li>
            <li>List of pages you manage</li>
        </ul>
        <p>We do not store any personal data except what is necessary for the app to function.</p>
    `

	termsOfServiceHTML = `
        <h1>Terms of Service</h1>
        <p>This app is for demonstration purposes and accessing Facebook Page insights.</p>
        <p>By using this app, you agree to allow access to your public profile and page insights data.</p>
    `
)
