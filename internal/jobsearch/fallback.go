package jobsearch

import "pathwise-backend/internal/match"

// FallbackListings returns the small fixed dataset substituted when the
// provider is unavailable. It is deliberately generic so skill matching
// still produces sensible gaps and scores.
func FallbackListings(roleType match.RoleType) []Listing {
	if roleType == match.RoleInternship {
		return internshipFallback
	}
	return fullTimeFallback
}

var fullTimeFallback = []Listing{
	{
		Title:        "Software Engineer",
		EmployerName: "Nimbus Labs",
		Description:  "We are hiring a software engineer comfortable with Python, SQL, and AWS. Experience with Docker, Kubernetes, and CI/CD pipelines is a plus. You will collaborate in an Agile team using Git and Jira.",
	},
	{
		Title:        "Full Stack Developer",
		EmployerName: "Brightstack",
		Description:  "Build modern web applications with React, TypeScript, and NodeJS. Familiarity with MongoDB or PostgreSQL, RESTful APIs, and GraphQL required. Strong communication and teamwork expected.",
	},
	{
		Title:        "Data Analyst",
		EmployerName: "Clearmetric",
		Description:  "Analyze product data with Python, Pandas, NumPy, and SQL. Data analysis and data science fundamentals required; Matplotlib and machine learning exposure welcome.",
	},
}

var internshipFallback = []Listing{
	{
		Title:        "Software Engineering Intern",
		EmployerName: "Nimbus Labs",
		Description:  "Summer internship working on backend services in Python with SQL and Git. Curiosity about Docker and AWS helps. Strong problem-solving and communication skills valued.",
	},
	{
		Title:        "Frontend Intern",
		EmployerName: "Brightstack",
		Description:  "Work with mentors on React and JavaScript features. Exposure to TypeScript, RESTful APIs, and Agile ceremonies. Teamwork and adaptability matter more than years of experience.",
	},
	{
		Title:        "Machine Learning Intern",
		EmployerName: "Clearmetric",
		Description:  "Assist with machine learning experiments using Python, Pandas, and scikit-learn. Coursework in data structures and algorithms expected; TensorFlow or PyTorch exposure is a bonus.",
	},
}
