package commands

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strings"

	"github.com/ctfang/command"
	"github.com/go-home-admin/clientgen/console/commands/openapi"
	"github.com/go-home-admin/clientgen/console/commands/typescript"
	"github.com/go-home-admin/clientgen/parser"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// Generator 一种目标语言的生成能力
// 新语言实现这个接口后在Execute的switch中补一个分支
type Generator interface {
	// Interface 一个definition生成一个结构声明
	Interface(name string, def *openapi.Schema) string
	// Service 汇总接口请求方法, interfaces是已生成的结构名
	Service(interfaces []string) string
	// Ext 产物文件后缀
	Ext() string
}

// ClientCommand @Bean
type ClientCommand struct{}

func (ClientCommand) Configure() command.Configure {
	return command.Configure{
		Name:        "make:client",
		Description: "根据swagger生成客户端结构及接口请求方法",
		Input: command.Argument{
			Option: []command.ArgParam{
				{
					Name:        "in",
					Description: "swagger.json路径, 可本地可远程",
					Default:     "@root/web/swagger.json",
				},
				{
					Name:        "out",
					Description: "客户端文件输出目录",
					Default:     "@root/resources/src/api",
				},
				{
					Name:        "lang",
					Description: "目标语言, 暂时只支持typescript",
					Default:     "typescript",
				},
				{
					Name:        "config",
					Description: "可选的yaml配置, 存在时覆盖in/out/lang",
					Default:     "@root/config/clientgen.yaml",
				},
			},
		},
	}
}

type clientConfig struct {
	In   string `yaml:"in"`
	Out  string `yaml:"out"`
	Lang string `yaml:"lang"`
}

func (ClientCommand) Execute(input command.Input) {
	root := getRootPath()
	in := strings.Replace(input.GetOption("in"), "@root", root, 1)
	out := strings.Replace(input.GetOption("out"), "@root", root, 1)
	lang := input.GetOption("lang")

	confFile := strings.Replace(input.GetOption("config"), "@root", root, 1)
	if parser.IsExist(confFile) {
		conf := loadClientConfig(root, confFile)
		if conf.In != "" {
			in = strings.Replace(conf.In, "@root", root, 1)
		}
		if conf.Out != "" {
			out = strings.Replace(conf.Out, "@root", root, 1)
		}
		if conf.Lang != "" {
			lang = conf.Lang
		}
	}

	data, err := readIn(in)
	if err != nil {
		log.Fatalf("swagger文件读取失败: %v", err)
	}
	spec, err := openapi.Parse(data)
	if err != nil {
		log.Fatalf("%v", err)
	}

	var gen Generator
	switch lang {
	case "typescript":
		gen = typescript.NewGenerator(spec)
	default:
		log.Fatalf("不支持的语言: %v, 暂时只支持typescript", lang)
	}

	interfaces, err := generate(spec, gen, out)
	if err != nil {
		log.Fatalf("%v", err)
	}
	log.Infof("生成完成: %v个结构, %v/service%v", len(interfaces), out, gen.Ext())
}

// 先出全部结构, 再出service, service的import要用到已生成的结构名
func generate(spec *openapi.Spec, gen Generator, out string) ([]string, error) {
	interfacesDir := out + "/interfaces"
	if err := os.MkdirAll(interfacesDir, 0766); err != nil {
		return nil, fmt.Errorf("输出目录创建失败: %w", err)
	}

	interfaces := make([]string, 0, len(spec.Definitions))
	for _, name := range sortDefinitions(spec.Definitions) {
		str := gen.Interface(name, spec.Definitions[name])
		file := interfacesDir + "/" + name + gen.Ext()
		if err := os.WriteFile(file, []byte(str), 0766); err != nil {
			return nil, fmt.Errorf("写入失败 %v: %w", file, err)
		}
		interfaces = append(interfaces, name)
	}

	file := out + "/service" + gen.Ext()
	if err := os.WriteFile(file, []byte(gen.Service(interfaces)), 0766); err != nil {
		return nil, fmt.Errorf("写入失败 %v: %w", file, err)
	}
	return interfaces, nil
}

// 读取swagger.json, 支持本地文件和远程地址
func readIn(in string) ([]byte, error) {
	if strings.Index(in, "http") == 0 {
		res, err := http.Get(in)
		if err != nil {
			return nil, err
		}
		defer res.Body.Close()
		return io.ReadAll(res.Body)
	}
	return os.ReadFile(in)
}

// 加载yaml配置, 支持env("KEY", 默认值)写法
func loadClientConfig(root, file string) clientConfig {
	conf := clientConfig{}
	if err := godotenv.Load(root + "/.env"); err != nil {
		log.Debugf("%v/.env文件不存在, 跳过环境变量加载", root)
	}
	fileContext, _ := os.ReadFile(file)
	fileContext = SetEnv(fileContext)
	if err := yaml.Unmarshal(fileContext, &conf); err != nil {
		log.Fatalf("配置解析错误: %v", err)
	}
	return conf
}

func sortDefinitions(m map[string]*openapi.Schema) []string {
	var keys []string
	for k := range m {
		keys = append(keys, k)
	}
	//按字典升序排列
	sort.Strings(keys)
	return keys
}
