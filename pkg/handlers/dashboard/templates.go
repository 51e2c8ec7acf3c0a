package dashboard

import "html/template"

var homeTemplate = template.Must(template.New("home").Parse(`<html>
<head><title>Cloud Sentry</title></head>
<body>
  <h1>Cloud Sentry</h1>
  <p>AWS cost &amp; security monitoring.</p>
  <p><a href="/dashboard">Cost dashboard</a></p>
</body>
</html>
`))

var emptyTemplate = template.Must(template.New("empty").Parse(`<html>
<head><title>Cloud Sentry</title></head>
<body>
  <h1>AWS Cost Dashboard</h1>
  <p>No cost snapshot available yet. The next report run will populate it.</p>
</body>
</html>
`))

var dashboardTemplate = template.Must(template.New("dashboard").Parse(`<html>
<head><title>AWS Cost Dashboard</title></head>
<body>
  <h1>AWS Cost Dashboard</h1>

  <h2>{{.KPI.Title}}</h2>
  <p style="font-size: 3em">${{printf "%.2f" .KPI.Value}}</p>

  <h2>{{.Trend.Title}}</h2>
  <table border="1">
    <tr><th>Date</th><th>Cost (USD)</th></tr>
{{- range .Trend.Points}}
    <tr><td>{{.Date}}</td><td>{{printf "%.4f" .Amount}}</td></tr>
{{- end}}
  </table>

  <h2>{{.Breakdown.Title}}</h2>
  <table border="1">
    <tr><th>Date</th><th>Cost (USD)</th></tr>
{{- range .Breakdown.Points}}
    <tr><td>{{.Date}}</td><td>{{printf "%.4f" .Amount}}</td></tr>
{{- end}}
  </table>
</body>
</html>
`))
