package templates

import "fmt"

// Per-template generators. Each template independently decides its own
// file set; the only cross-template contract is that README.md, when
// present, is merged over the provider's auto-initialized one by the
// lifecycle manager.

func (e *Engine) basic(name, description string) []File {
	return []File{
		{Path: "LICENSE", Content: e.mitLicense()},
		{Path: "README.md", Content: e.readmeHeader(name, description) + fmt.Sprintf(`## 📖 Overview

%s

## 📂 Project Structure

`+"```"+`
├── README.md
├── LICENSE
└── src/
`+"```"+`

## 🚀 Getting Started

`+"```bash"+`
git clone https://github.com/%s/%s.git
cd %s
`+"```"+`

## 📝 License

This project is licensed under the MIT License — see the [LICENSE](LICENSE) file for details.
`, description, e.owner, name, name) + e.readmeFooter()},
		{Path: ".gitignore", Content: `# Dependencies
node_modules/
vendor/

# Build
dist/
build/

# OS
.DS_Store
Thumbs.db
*.swp

# IDE
.idea/
.vscode/

# Environment
.env
.env.local

# Logs
*.log
`},
	}
}

func (e *Engine) dataAnalysis(name, description string) []File {
	return []File{
		{Path: "LICENSE", Content: e.mitLicense()},
		{Path: "README.md", Content: e.readmeHeader(name, description) + fmt.Sprintf(`## 📖 Overview

%s

## 🛠️ Technologies

- Python 3.10+
- Jupyter Notebook
- pandas / numpy
- matplotlib / seaborn
- scikit-learn

## 🚀 Getting Started

`+"```bash"+`
git clone https://github.com/%s/%s.git
cd %s
python -m venv venv
source venv/bin/activate
pip install -r requirements.txt
jupyter notebook
`+"```"+`

## 📝 License

MIT — see [LICENSE](LICENSE).
`, description, e.owner, name, name) + e.readmeFooter()},
		{Path: "requirements.txt", Content: `pandas>=2.0
numpy>=1.24
matplotlib>=3.7
seaborn>=0.12
scikit-learn>=1.3
jupyter>=1.0
`},
		{Path: "notebooks/analysis.ipynb", Content: fmt.Sprintf(`{
  "nbformat": 4,
  "nbformat_minor": 5,
  "metadata": {
    "kernelspec": {"display_name": "Python 3", "language": "python", "name": "python3"},
    "language_info": {"name": "python", "version": "3.10.0"}
  },
  "cells": [
    {"cell_type": "markdown", "metadata": {}, "source": ["# %s\n", "\n", "%s\n", "\n", "## Setup"]},
    {"cell_type": "code", "metadata": {}, "source": ["import pandas as pd\n", "import numpy as np\n", "import matplotlib.pyplot as plt\n", "import seaborn as sns\n", "\n", "sns.set_theme(style=\"whitegrid\")"], "outputs": [], "execution_count": null},
    {"cell_type": "markdown", "metadata": {}, "source": ["## 1. Data Loading"]},
    {"cell_type": "code", "metadata": {}, "source": ["# df = pd.read_csv(\"../data/raw/dataset.csv\")\n", "# df.head()"], "outputs": [], "execution_count": null},
    {"cell_type": "markdown", "metadata": {}, "source": ["## 2. Exploratory Data Analysis"]},
    {"cell_type": "markdown", "metadata": {}, "source": ["## 3. Conclusions"]}
  ]
}
`, name, description)},
		{Path: "src/utils.py", Content: `"""Utility functions for data analysis."""


def load_data(filepath: str):
    """Load dataset from file path."""
    import pandas as pd

    if filepath.endswith('.csv'):
        return pd.read_csv(filepath)
    elif filepath.endswith('.xlsx'):
        return pd.read_excel(filepath)
    elif filepath.endswith('.json'):
        return pd.read_json(filepath)
    else:
        raise ValueError(f"Unsupported file format: {filepath}")
`},
		{Path: "data/raw/.gitkeep", Content: ""},
		{Path: "data/processed/.gitkeep", Content: ""},
		{Path: "output/figures/.gitkeep", Content: ""},
		{Path: ".gitignore", Content: `# Python
__pycache__/
*.py[cod]
venv/
.venv/
*.egg-info/

# Jupyter
.ipynb_checkpoints/

# Data (keep structure, ignore large files)
data/raw/*
data/processed/*
!data/raw/.gitkeep
!data/processed/.gitkeep

# Output
output/figures/*
!output/figures/.gitkeep

# OS / IDE
.DS_Store
.idea/
.vscode/
.env
`},
	}
}

func (e *Engine) nodeAPI(name, description string) []File {
	return []File{
		{Path: "LICENSE", Content: e.mitLicense()},
		{Path: "README.md", Content: e.readmeHeader(name, description) + fmt.Sprintf(`## 📖 Overview

%s

## 🛠️ Technologies

- Node.js 18+
- Express 4

## 🚀 Getting Started

`+"```bash"+`
git clone https://github.com/%s/%s.git
cd %s
npm install
npm run dev
`+"```"+`

## 📡 API Endpoints

| Method | Endpoint | Description |
|--------|----------|-------------|
| GET | /api/health | Health check |

## 📝 License

MIT — see [LICENSE](LICENSE).
`, description, e.owner, name, name) + e.readmeFooter()},
		{Path: "package.json", Content: fmt.Sprintf(`{
  "name": "%s",
  "version": "1.0.0",
  "private": true,
  "type": "module",
  "scripts": {
    "dev": "node --watch server/index.js",
    "start": "node server/index.js",
    "test": "node --test tests/"
  },
  "dependencies": {
    "express": "^4.21.1",
    "cors": "^2.8.5"
  }
}
`, slug(name, "-"))},
		{Path: "server/index.js", Content: `import express from 'express';
import cors from 'cors';

const app = express();
const PORT = process.env.PORT || 3001;

app.use(cors());
app.use(express.json());

app.get('/api/health', (req, res) => {
  res.json({ status: 'ok', timestamp: new Date().toISOString() });
});

app.listen(PORT, () => {
  console.log(` + "`🚀 API running on http://localhost:${PORT}`" + `);
});
`},
		{Path: "server/routes/api.js", Content: `import { Router } from 'express';
const router = Router();

router.get('/', (req, res) => {
  res.json({ message: 'API is working' });
});

export default router;
`},
		{Path: "tests/.gitkeep", Content: ""},
		{Path: "docs/README.md", Content: fmt.Sprintf("# %s — API Documentation\n\n## Endpoints\n\nTBD\n", name)},
		{Path: ".gitignore", Content: "node_modules/\n.env\n.env.local\n.DS_Store\n*.log\n.idea/\n.vscode/\n"},
	}
}

func (e *Engine) reactVite(name, description string) []File {
	return []File{
		{Path: "LICENSE", Content: e.mitLicense()},
		{Path: "README.md", Content: e.readmeHeader(name, description) + fmt.Sprintf(`## 📖 Overview

%s

## 🛠️ Technologies

- React 18
- Vite 6
- React Router v6

## 🚀 Getting Started

`+"```bash"+`
git clone https://github.com/%s/%s.git
cd %s
npm install
npm run dev
`+"```"+`

## 📝 License

MIT — see [LICENSE](LICENSE).
`, description, e.owner, name, name) + e.readmeFooter()},
		{Path: "package.json", Content: fmt.Sprintf(`{
  "name": "%s",
  "version": "1.0.0",
  "private": true,
  "type": "module",
  "scripts": {
    "dev": "vite",
    "build": "vite build",
    "preview": "vite preview"
  },
  "dependencies": {
    "react": "^18.3.1",
    "react-dom": "^18.3.1",
    "react-router-dom": "^6.28.0"
  },
  "devDependencies": {
    "@vitejs/plugin-react": "^4.3.4",
    "vite": "^6.0.0"
  }
}
`, slug(name, "-"))},
		{Path: "index.html", Content: fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1.0" />
  <title>%s</title>
</head>
<body>
  <div id="root"></div>
  <script type="module" src="/src/main.jsx"></script>
</body>
</html>
`, name)},
		{Path: "vite.config.js", Content: `import { defineConfig } from 'vite';
import react from '@vitejs/plugin-react';

export default defineConfig({
  plugins: [react()],
  build: { outDir: 'dist' },
});
`},
		{Path: "src/main.jsx", Content: `import React from 'react';
import ReactDOM from 'react-dom/client';
import App from './App';
import './styles/main.css';

ReactDOM.createRoot(document.getElementById('root')).render(
  <React.StrictMode><App /></React.StrictMode>
);
`},
		{Path: "src/App.jsx", Content: fmt.Sprintf(`export default function App() {
  return (
    <div className="app">
      <h1>%s</h1>
      <p>%s</p>
    </div>
  );
}
`, name, description)},
		{Path: "src/styles/main.css", Content: `* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: system-ui, sans-serif; background: #0a0a0a; color: #e5e5e5; min-height: 100vh; }
.app { max-width: 1200px; margin: 0 auto; padding: 2rem; }
`},
		{Path: ".gitignore", Content: "node_modules/\ndist/\n.env\n.DS_Store\n*.log\n.idea/\n.vscode/\n"},
	}
}

func (e *Engine) staticSite(name, description string) []File {
	return []File{
		{Path: "LICENSE", Content: e.mitLicense()},
		{Path: "README.md", Content: e.readmeHeader(name, description) + fmt.Sprintf(`## 📖 Overview

%s

## 🛠️ Technologies

- HTML5
- CSS3
- Vanilla JavaScript

## 🚀 Getting Started

`+"```bash"+`
git clone https://github.com/%s/%s.git
cd %s
# Open index.html in your browser
`+"```"+`

## 📝 License

MIT — see [LICENSE](LICENSE).
`, description, e.owner, name, name) + e.readmeFooter()},
		{Path: "index.html", Content: fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1.0" />
  <title>%s</title>
  <link rel="stylesheet" href="css/style.css" />
</head>
<body>
  <header>
    <h1>%s</h1>
    <p>%s</p>
  </header>
  <main id="app"></main>
  <script src="js/main.js"></script>
</body>
</html>
`, name, name, description)},
		{Path: "css/style.css", Content: `* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: system-ui, sans-serif; background: #0a0a0a; color: #e5e5e5; min-height: 100vh; }
header { text-align: center; padding: 4rem 2rem 2rem; }
main { max-width: 1200px; margin: 0 auto; padding: 2rem; }
`},
		{Path: "js/main.js", Content: fmt.Sprintf("// %s — Main JavaScript\n\nconsole.log('%s loaded');\n", name, name)},
		{Path: "assets/.gitkeep", Content: ""},
		{Path: ".gitignore", Content: ".DS_Store\nThumbs.db\n*.log\n.idea/\n.vscode/\n"},
	}
}

func (e *Engine) pythonProject(name, description string) []File {
	pyName := slug(name, "_")
	return []File{
		{Path: "LICENSE", Content: e.mitLicense()},
		{Path: "README.md", Content: e.readmeHeader(name, description) + fmt.Sprintf(`## 📖 Overview

%s

## 🛠️ Technologies

- Python 3.10+

## 🚀 Getting Started

`+"```bash"+`
git clone https://github.com/%s/%s.git
cd %s
python -m venv venv
source venv/bin/activate
pip install -r requirements.txt
python -m %s.main
`+"```"+`

## 📝 License

MIT — see [LICENSE](LICENSE).
`, description, e.owner, name, name, pyName) + e.readmeFooter()},
		{Path: "requirements.txt", Content: "# Add your dependencies here\n"},
		{Path: pyName + "/__init__.py", Content: fmt.Sprintf("\"\"\"%s — %s\"\"\"\n\n__version__ = \"1.0.0\"\n", name, description)},
		{Path: pyName + "/main.py", Content: fmt.Sprintf(`"""Main entry point for %s."""


def main():
    print("Hello from %s!")


if __name__ == "__main__":
    main()
`, name, name)},
		{Path: "tests/test_main.py", Content: fmt.Sprintf("\"\"\"Tests for %s.\"\"\"\n\n\ndef test_placeholder():\n    assert True\n", name)},
		{Path: "docs/.gitkeep", Content: ""},
		{Path: ".gitignore", Content: "__pycache__/\n*.py[cod]\nvenv/\n.venv/\n*.egg-info/\ndist/\nbuild/\n.env\n.DS_Store\n.idea/\n.vscode/\n*.log\n"},
	}
}
