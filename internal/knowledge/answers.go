package knowledge

// Canonical answers are plain text. Emphasis markup never belongs here;
// the presentation layer renders answers verbatim.

func defaultAnswers() map[Topic]string {
	return map[Topic]string{
		TopicGreeting: `Hello! I'm here to help you learn about Sourav Kumar's portfolio. You can ask me about:
- His technical skills
- His projects
- His work experience
- His frontend development expertise

What would you like to know?`,

		TopicSkills: `Sourav's technical skills include:

Frontend Technologies:
- TypeScript, JavaScript, HTML5, CSS3
- React.js, Next.js
- Redux, React Bootstrap

Backend & Databases:
- Node.js, Express.js
- MongoDB, PostgreSQL

Languages:
- Java, Python

Tools & Platforms:
- GitHub, Git, Bitbucket
- JSON, npm, Postman, Jira
- Firebase, FastAPI, ServiceNow`,

		TopicProjects: `Sourav's featured projects:

1. Chef Claude - AI-Powered Recipe Generator
- Generates custom recipes based on ingredients using OpenRouter AI API
- Technologies: React, OpenRouter API, Netlify
- Demo: https://ai-chefclaude.netlify.app/

2. Meme Generator - Web App
- Dynamic meme generator with real-time templates
- Technologies: React, JavaScript, Netlify
- Demo: https://generate-trendingmemes.netlify.app/

3. Roll Dice Tenzies - Interactive Game
- Interactive dice game with React Hooks and accessibility features
- Technologies: React.js, JavaScript
- Demo: https://rolldice-tenzies.netlify.app/

4. Inventos - Inventory Management Software
- Full-stack inventory management for manufacturing industry
- Technologies: HTML5, CSS3, JavaScript, Python, Django
- Demo: https://inventos.netlify.app/

5. My Travel Journey - Travel Project
- React-based travel destination showcase
- Technologies: React, JavaScript, Netlify
- Demo: https://travel-with-myjourney.netlify.app/

6. Covid-19 - Data Tracker
- Real-time COVID-19 data tracking for India
- Technologies: HTML, CSS, JavaScript, API Integration
- Demo: https://covid19-cowin.netlify.app/`,

		TopicExperience: `Sourav's work experience:

Software Developer - Aimleap (Oct 2025 - Present)
- Developing production-ready frontend features using React.js and modern JavaScript
- Building clean, reusable, and scalable UI components
- Collaborating with product managers, designers, and backend engineers

Analyst - Capgemini (Dec 2022 - Oct 2025)
- Developed customer service chatbot and AI-powered ticketing system
- Worked on NLU-based classification for automated ticket generation
- Winner - ServiceNow Gen AI Hackathon 2024

Full Stack Developer - Worksbot (Jan 2022 - Mar 2022)
- Built full-stack features for internal tools using React and backend APIs
- Implemented authentication flows and data synchronization

Frontend Developer - Lyearn (Jun 2020 - Mar 2021)
- Developed responsive and accessible UI components
- Converted Figma designs into production-ready React components`,

		TopicEducation: `Sourav Kumar's education:

B.Tech - Computer Science & Engineering
- Institution: Gandhi Engineering College (BPUT), Bhubaneswar
- Duration: 2018 - 2022
- CGPA: 8.79

Key highlights:
- Strong foundation in algorithms, data structures, and software engineering
- Worked on multiple web projects during studies`,

		TopicResume: `You can download Sourav Kumar's resume (CV) directly from the portfolio website. Look for the "Resume" button in the navigation menu at the top of the page. The resume is available as a PDF file named "cv.pdf" and can be downloaded by clicking the Resume button.`,

		TopicCurrentCompany: `Sourav is currently working as a Software Developer at Aimleap (Oct 2025 - Present). He develops production-ready frontend features using React.js and modern JavaScript, builds clean and reusable UI components, and collaborates with product managers, designers, and backend engineers.`,

		TopicFirstCompany: `Sourav's first company was Lyearn, where he worked as a Frontend Developer from June 2020 to March 2021. He developed responsive and accessible UI components and converted Figma designs into production-ready React components.`,
	}
}
