// internal/template/content.go
// 信件模板內容

package template

const defaultText = `Hi {{.Greeting}},

I hope you’re doing well. My name is {{.Profile.Name}}, and I am writing to apply for the MERN Stack Developer position at your organization. I have 3 years of hands-on experience building scalable, high-performance web applications using React.js, Node.js, TypeScript, Microservices, PostgreSQL, MongoDB, SSO, and SSE.

In my recent roles, I have:
- Built responsive, pixel-perfect UIs using React.js and modern frontend architecture
- Developed secure backend APIs and microservices
- Implemented real-time features using Server-Sent Events (SSE)
- Improved performance through caching, state optimization, memoization & API tuning
- Delivered end-to-end features in fast-paced product environments
- Collaborated with Product, QA, and DevOps to ensure smooth and timely delivery

I want to highlight that I am an IMMEDIATE JOINER, fully available to start right away without any notice period.

Here are my key links for quick review:
LinkedIn: {{.Profile.LinkedIn}}
Portfolio: {{.Profile.Portfolio}}
Email: {{.Profile.Email}}
Contact: {{.Profile.Phone}}

I would greatly appreciate the opportunity to discuss how my MERN expertise and hands-on project experience can contribute to your engineering team.

Thank you for your time, and I look forward to the possibility of connecting.

Warm regards,
{{.Profile.Name}}
{{.Profile.Title}}
Immediate Joiner
`

const defaultHTML = `<p>Hi {{.Greeting}},</p>
<p>
  I hope you’re doing well. My name is {{.Profile.Name}}, and I am writing to apply for the MERN Stack Developer position at your organization.
  I have 3 years of hands-on experience building scalable, high-performance web applications using React.js, Node.js, TypeScript, Microservices,
  PostgreSQL, MongoDB, SSO, and SSE.
</p>
<p>In my recent roles, I have:</p>
<ul>
  <li>Built responsive, pixel-perfect UIs using React.js and modern frontend architecture</li>
  <li>Developed secure backend APIs and microservices</li>
  <li>Implemented real-time features using Server-Sent Events (SSE)</li>
  <li>Improved performance through caching, state optimization, memoization &amp; API tuning</li>
  <li>Delivered end-to-end features in fast-paced product environments</li>
  <li>Collaborated with Product, QA, and DevOps to ensure smooth and timely delivery</li>
</ul>
<p><strong>I am an IMMEDIATE JOINER</strong>, fully available to start right away without any notice period.</p>
<p>Here are my key links for quick review:</p>
<ul>
  <li>LinkedIn: <a href="{{.Profile.LinkedIn}}">{{.Profile.LinkedIn}}</a></li>
  <li>Portfolio: <a href="{{.Profile.Portfolio}}">{{.Profile.Portfolio}}</a></li>
  <li>Email: <a href="mailto:{{.Profile.Email}}">{{.Profile.Email}}</a></li>
  <li>Contact: {{.Profile.Phone}}</li>
</ul>
<p>
  I would greatly appreciate the opportunity to discuss how my MERN expertise and hands-on project experience can contribute to your engineering team.
</p>
<p>Thank you for your time, and I look forward to the possibility of connecting.</p>
<p>
  Warm regards,<br />
  {{.Profile.Name}}<br />
  {{.Profile.Title}}<br />
  Immediate Joiner
</p>`

const overrideText = `Hi {{.Greeting}},

{{.Body}}

Warm regards,
{{.Profile.Name}}
{{.Profile.Title}}
Immediate Joiner
`

const overrideHTML = `<p>Hi {{.Greeting}},</p>
<div style="white-space:pre-wrap;font-family:system-ui, -apple-system, Segoe UI, Roboto, Helvetica, Arial;">{{.Body}}</div>
<p>
  Warm regards,<br />
  {{.Profile.Name}}<br />
  {{.Profile.Title}}<br />
  Immediate Joiner
</p>`
